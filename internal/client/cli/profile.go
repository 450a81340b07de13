package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/lakeforum/lakecli/internal/avatarx"
	"github.com/lakeforum/lakecli/internal/imagex"
)

func (a *App) showProfile(ctx context.Context) {
	a.session.RefreshProfile(ctx)
	p := a.session.Profile()
	if p == nil {
		fmt.Println("(unknown user)")
		return
	}

	fmt.Printf("%s  Lv.%d %s\n", p.Nickname, p.Level, p.LevelName)
	if p.Avatar != "" {
		fmt.Println("头像:", a.config.WebOrigin+imagex.AvatarURL(p.Avatar))
	} else {
		fmt.Printf("头像: %s (%s)\n", avatarx.Letter(p.Nickname), avatarx.Color(p.ID))
	}
	if p.Department != "" {
		fmt.Println("院系:", p.Department)
	}
	fmt.Println("积分:", p.Score)
}

func (a *App) changeNickname(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: name <new nickname>")
		return
	}
	if err := a.client.User.ChangeNickname(ctx, args[0]); err != nil {
		log.Println(err.Error())
		return
	}
	a.session.RefreshProfile(ctx)
	fmt.Println("ok")
}

func (a *App) showMessages(ctx context.Context) {
	count, err := a.client.User.MessageCount(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Printf("楼层 %d · 回复 %d · 通知 %d · 点赞 %d\n", count.Floor, count.Reply, count.Notice, count.Like)

	if count.Notice > 0 {
		notices, err := a.client.User.Notices(ctx)
		if err != nil {
			log.Println(err.Error())
			return
		}
		for _, n := range notices.List {
			fmt.Printf("  [%s] %s\n", n.Sender, n.Title)
		}
	}
}
