package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/transferbench/internal/client/bench"
	pb "github.com/dmitrijs2005/transferbench/internal/proto"
	"github.com/spf13/cobra"
)

func (c *CLI) newChatCmd() *cobra.Command {
	var sender string
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Join the chat relay; every stdin line is sent as a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.chat(cmd.Context(), cmd, sender)
		},
	}
	host, _ := os.Hostname()
	cmd.Flags().StringVar(&sender, "name", host, "sender name shown to other participants")
	return cmd
}

func (a *App) chat(ctx context.Context, cmd *cobra.Command, sender string) error {
	gc, err := a.grpcClient("")
	if err != nil {
		return err
	}
	defer gc.Close()

	return a.measure(ctx, "chat", bench.TransportGRPC, func(ctx context.Context) (bench.Result, error) {
		var n int64
		err := gc.Chat(ctx, sender, cmd.InOrStdin(), func(m *pb.ChatMessage) {
			n++
			at := time.Unix(0, m.GetSentAtUnixNano())
			fmt.Fprintf(a.out, "[%s] %s: %s\n", at.Format(time.TimeOnly), m.GetSender(), m.GetText())
		})
		return bench.Result{Records: n, Bytes: gc.BytesReceived()}, err
	})
}
