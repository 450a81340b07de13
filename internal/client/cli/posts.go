package cli

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/lakeforum/lakecli/internal/client/api"
	"github.com/lakeforum/lakecli/internal/client/models"
)

func (a *App) listPosts(ctx context.Context, args []string) {
	list, err := a.client.Posts.List(ctx, api.ListPostsOptions{Page: optionalPage(args)})
	if err != nil {
		log.Println(err.Error())
		return
	}
	a.printPostList(list)
}

func (a *App) searchPosts(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: search <keyword> [page]")
		return
	}
	keyword := args[0]
	list, err := a.client.Posts.List(ctx, api.ListPostsOptions{
		Keyword: keyword,
		Page:    optionalPage(args[1:]),
	})
	if err != nil {
		log.Println(err.Error())
		return
	}
	a.printPostList(list)
}

func (a *App) printPostList(list *models.PostList) {
	if len(list.List) == 0 {
		fmt.Println("(no posts)")
		return
	}
	for i := range list.List {
		a.printPostLine(&list.List[i])
	}
	if list.Total > 0 {
		fmt.Printf("total %d\n", list.Total)
	}
}

// togglePost flips a like/dis/fav state. The backend does not report the
// current state on the toggle endpoints, so the post is fetched first and
// its flags decide the direction.
func (a *App) togglePost(ctx context.Context, action string, id int) {
	data, err := a.client.Posts.Get(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return
	}
	if data.Post == nil {
		log.Println("post not found")
		return
	}
	p := data.Post

	switch action {
	case "like":
		err = a.client.Posts.Like(ctx, id, !p.IsLike)
	case "dis":
		err = a.client.Posts.Dislike(ctx, id, !p.IsDis)
	case "fav":
		err = a.client.Posts.Favorite(ctx, id, !p.IsFav)
	}
	if err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Println("ok")
}

func (a *App) deletePost(ctx context.Context, id int) {
	if err := a.client.Posts.Delete(ctx, id); err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Println("deleted")
}

func (a *App) myPosts(ctx context.Context, args []string) {
	a.pagedPosts(ctx, args, a.client.Posts.Mine)
}

func (a *App) favoritePosts(ctx context.Context, args []string) {
	a.pagedPosts(ctx, args, a.client.Posts.Favorites)
}

func (a *App) historyPosts(ctx context.Context, args []string) {
	a.pagedPosts(ctx, args, a.client.Posts.History)
}

func (a *App) pagedPosts(ctx context.Context, args []string, fetch func(context.Context, api.PageQuery) (*models.PostList, error)) {
	list, err := fetch(ctx, api.PageQuery{Page: optionalPage(args)})
	if err != nil {
		log.Println(err.Error())
		return
	}
	a.printPostList(list)
}

func (a *App) showPostTypes(ctx context.Context) {
	types := a.refdata.PostTypes(ctx)
	if len(types) == 0 {
		fmt.Println("(no categories)")
		return
	}
	for _, t := range types {
		fmt.Printf("%d  %s\n", t.ID, t.Name)
	}
}

func (a *App) showHotTags(ctx context.Context) {
	tags := a.refdata.HotTags(ctx)
	if len(tags) == 0 {
		fmt.Println("(no tags)")
		return
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	fmt.Println(strings.Join(names, "  "))
}
