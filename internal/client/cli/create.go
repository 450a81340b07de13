package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/lakeforum/lakecli/internal/client/api"
)

// createPost walks through the new-post flow: category, title, body,
// optional tag and department, optional images (uploaded first).
func (a *App) createPost(ctx context.Context) {
	a.showPostTypes(ctx)
	typeStr, err := GetSimpleText(a.reader, "Category id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	postType, err := strconv.Atoi(typeStr)
	if err != nil {
		log.Println("invalid category id")
		return
	}

	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	content, err := GetMultiline(a.reader, "Content", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	tagID, err := GetSimpleText(a.reader, "Tag id (empty for none)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	departmentID, err := GetSimpleText(a.reader, "Department id (empty for none)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	paths, err := GetSimpleText(a.reader, "Image files, space separated (empty for none)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	images, err := a.uploadFromPaths(ctx, splitFields(paths))
	if err != nil {
		log.Println(err.Error())
		return
	}

	err = a.client.Posts.Create(ctx, api.CreatePost{
		Type:         postType,
		Title:        title,
		Content:      content,
		TagID:        tagID,
		DepartmentID: departmentID,
		Images:       images,
	})
	if err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Println("posted")
}

func (a *App) sendFloor(ctx context.Context, postID int) {
	content, err := GetMultiline(a.reader, "Reply", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if err := a.client.Floors.Create(ctx, postID, content, nil); err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Println("replied")
}

func (a *App) replyFloor(ctx context.Context, floorID int) {
	content, err := GetMultiline(a.reader, "Reply", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if err := a.client.Floors.Reply(ctx, floorID, content, nil); err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Println("replied")
}
