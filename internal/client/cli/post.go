package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/lakeforum/lakecli/internal/client/api"
)

// showPost renders one post with its floors, records the visit, and lists
// the department's official replies for school posts.
func (a *App) showPost(ctx context.Context, id int) {
	data, err := a.client.Posts.Get(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return
	}
	if data.Post == nil {
		log.Println("post not found")
		return
	}

	// best effort, the backend uses it for the history listing
	if err := a.client.Posts.Visit(ctx, id); err != nil {
		a.log.Warn(ctx, "visit post failed", "post_id", id, "err", err)
	}

	a.printPostDetail(data.Post)

	if official, err := a.client.Floors.OfficialReplies(ctx, id); err == nil && len(official.List) > 0 {
		fmt.Println("\n官方回复:")
		for i := range official.List {
			a.printFloor(&official.List[i])
		}
	}

	floors, err := a.client.Floors.List(ctx, api.ListFloorsOptions{PostID: id})
	if err != nil {
		log.Println(err.Error())
		return
	}
	if len(floors.List) == 0 {
		fmt.Println("\n(no replies)")
		return
	}

	fmt.Println()
	for i := range floors.List {
		f := &floors.List[i]
		a.printFloor(f)
		for j := range f.SubFloors {
			a.printFloor(&f.SubFloors[j])
		}
	}
	if floors.Total > 0 {
		fmt.Printf("total %d floors\n", floors.Total)
	}
}

func (a *App) reportPost(ctx context.Context, id int) {
	reason, err := GetSimpleText(a.reader, "Reason", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if err := a.client.User.Report(ctx, api.Report{ID: id, Reason: reason}); err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Println("reported")
}
