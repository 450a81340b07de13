package cli

import (
	"fmt"

	"github.com/lakeforum/lakecli/internal/avatarx"
	"github.com/lakeforum/lakecli/internal/client/models"
	"github.com/lakeforum/lakecli/internal/formatx"
	"github.com/lakeforum/lakecli/internal/imagex"
)

// authorTag renders the author of a post or floor: the letter avatar in its
// palette color slot, then the nickname.
func authorTag(userInfo *models.UserInfo, fallbackName string) string {
	name := fallbackName
	userID := 0
	if userInfo != nil {
		if userInfo.Nickname != "" {
			name = userInfo.Nickname
		}
		userID = userInfo.UserID
	}
	return fmt.Sprintf("[%s %s] %s", avatarx.Letter(name), avatarx.Color(userID), name)
}

func (a *App) printPostLine(p *models.Post) {
	when := formatx.FormatRelativeTime(formatx.ParseBackendTime(p.CreatedAt))
	fmt.Printf("#%d %s  %s  %s\n", p.ID, p.Title, authorTag(p.UserInfo, "匿名"), when)
	if excerpt := formatx.TruncateContent(p.Content); excerpt != "" {
		fmt.Printf("    %s\n", excerpt)
	}
	fmt.Printf("    赞 %d · 评 %d · 藏 %d · 阅 %d\n", p.LikeCount, p.ReplyCount, p.FavCount, p.VisitCount)
}

func (a *App) printPostDetail(p *models.Post) {
	fmt.Printf("#%d %s\n", p.ID, p.Title)

	avatar := avatarx.Resolve(avatarx.Subject{
		Type:       p.Type,
		Avatar:     p.Avatar,
		UserAvatar: userAvatar(p.UserInfo),
	}, false)
	if avatar != "" {
		fmt.Printf("%s  %s\n", authorTag(p.UserInfo, "匿名"), a.config.WebOrigin+imagex.AvatarURL(avatar))
	} else {
		fmt.Println(authorTag(p.UserInfo, "匿名"))
	}

	fmt.Println(formatx.FormatDateTime(formatx.ParseBackendTime(p.CreatedAt)))
	fmt.Println()
	fmt.Println(p.Content)
	for _, u := range imagex.OriginURLs(p.ImageURLs) {
		fmt.Println("  图:", a.config.WebOrigin+u)
	}
	fmt.Printf("\n赞 %d · 踩 %d · 藏 %d · 阅 %d\n", p.LikeCount, p.DisCount, p.FavCount, p.VisitCount)
}

func (a *App) printFloor(f *models.Floor) {
	when := formatx.FormatRelativeTime(formatx.ParseBackendTime(f.CreatedAt))
	fmt.Printf("  %d层 %s  %s\n", f.ID, authorTag(f.UserInfo, "匿名"), when)
	if f.ReplyToName != "" {
		fmt.Printf("    回复 %s:\n", f.ReplyToName)
	}
	fmt.Printf("    %s\n", f.Content)
	if f.ImageURL != "" {
		fmt.Println("    图:", a.config.WebOrigin+imagex.ThumbURL(f.ImageURL))
	}
	fmt.Printf("    赞 %d · 回复 %d\n", f.LikeCount, f.ReplyCount)
}

func userAvatar(ui *models.UserInfo) string {
	if ui == nil {
		return ""
	}
	return ui.Avatar
}
