package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// uploadImages uploads the files named on the command line and prints the
// identifiers the backend assigned.
func (a *App) uploadImages(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: upload <file> [file...]")
		return
	}
	urls, err := a.uploadFromPaths(ctx, args)
	if err != nil {
		log.Println(err.Error())
		return
	}
	for _, u := range urls {
		fmt.Println(u)
	}
}

// uploadFromPaths reads the given files and pushes them to the upload
// endpoint. An empty path list is fine and uploads nothing.
func (a *App) uploadFromPaths(ctx context.Context, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	files := make([][]byte, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		files = append(files, data)
	}

	return a.client.Upload.Images(ctx, files)
}

func splitFields(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Fields(s)
}
