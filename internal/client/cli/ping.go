package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check the gRPC health service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ping(cmd.Context())
		},
	}
}

func (a *App) ping(ctx context.Context) error {
	gc, err := a.grpcClient("")
	if err != nil {
		return err
	}
	defer gc.Close()

	start := time.Now()
	if err := gc.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "SERVING (%s)\n", time.Since(start).Round(time.Microsecond))
	return nil
}
