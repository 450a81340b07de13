package main

import (
	"context"
	"log"

	"github.com/lakeforum/lakecli/internal/client/cli"
	"github.com/lakeforum/lakecli/internal/client/config"
	"github.com/lakeforum/lakecli/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	logger, err := logging.NewDefault()
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
