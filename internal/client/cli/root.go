package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	if p := a.session.Profile(); p != nil {
		return fmt.Sprintf("(%s)", p.Nickname)
	}
	return "(logged in)"
}

// Root runs the interactive loop: read a line, dispatch the first token as
// the command, pass the rest as arguments. Command handlers report their
// own errors; the loop only does I/O. The loop shares the app's reader with
// the interactive prompts so no input is lost between them.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to the lake (type 'help' for commands)")

	for {
		fmt.Printf("lake %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "posts", "p":
			a.listPosts(ctx, args)
		case "search":
			a.searchPosts(ctx, args)
		case "post":
			withIntArg(args, "Usage: post <id>", func(id int) { a.showPost(ctx, id) })
		case "new":
			a.createPost(ctx)
		case "reply":
			withIntArg(args, "Usage: reply <post id>", func(id int) { a.sendFloor(ctx, id) })
		case "replyfloor":
			withIntArg(args, "Usage: replyfloor <floor id>", func(id int) { a.replyFloor(ctx, id) })
		case "like":
			withIntArg(args, "Usage: like <post id>", func(id int) { a.togglePost(ctx, "like", id) })
		case "dis":
			withIntArg(args, "Usage: dis <post id>", func(id int) { a.togglePost(ctx, "dis", id) })
		case "fav":
			withIntArg(args, "Usage: fav <post id>", func(id int) { a.togglePost(ctx, "fav", id) })
		case "del":
			withIntArg(args, "Usage: del <post id>", func(id int) { a.deletePost(ctx, id) })
		case "mine":
			a.myPosts(ctx, args)
		case "favs":
			a.favoritePosts(ctx, args)
		case "history":
			a.historyPosts(ctx, args)
		case "me":
			a.showProfile(ctx)
		case "name":
			a.changeNickname(ctx, args)
		case "messages":
			a.showMessages(ctx)
		case "upload":
			a.uploadImages(ctx, args)
		case "cats":
			a.showPostTypes(ctx)
		case "tags":
			a.showHotTags(ctx)
		case "report":
			withIntArg(args, "Usage: report <post id>", func(id int) { a.reportPost(ctx, id) })
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Println("Available commands: posts, search, post, new, reply, replyfloor, like, dis, fav, del, mine, favs, history, me, name, messages, upload, cats, tags, report, logout, exit")
	} else {
		fmt.Println("Available commands: login, posts, post, cats, tags, exit")
	}
}

// withIntArg parses the first argument as an integer id and calls fn, or
// prints usage.
func withIntArg(args []string, usage string, fn func(id int)) {
	if len(args) == 0 {
		fmt.Println(usage)
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println(usage)
		return
	}
	fn(id)
}

// optionalPage parses an optional page-number argument, defaulting to 1.
func optionalPage(args []string) int {
	if len(args) == 0 {
		return 1
	}
	page, err := strconv.Atoi(args[0])
	if err != nil || page < 1 {
		return 1
	}
	return page
}
