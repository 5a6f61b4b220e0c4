package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/transferbench/internal/server"
	"github.com/dmitrijs2005/transferbench/internal/server/config"
)

func main() {
	ctx := context.Background()

	app, err := server.NewApp(ctx, config.LoadConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, "server startup failed:", err)
		os.Exit(1)
	}

	// Run returns after SIGINT/SIGTERM or a transport failure.
	app.Run(ctx)
}
