package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/transferbench/internal/client/bench"
	"github.com/dmitrijs2005/transferbench/internal/client/client"
	"github.com/spf13/cobra"
)

func (c *CLI) newEmployeesCmd() *cobra.Command {
	var transport string

	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Benchmark employee listing and streaming",
	}
	cmd.PersistentFlags().StringVar(&transport, "transport", bench.TransportGRPC, "grpc or rest")

	var max int
	stream := &cobra.Command{
		Use:   "stream",
		Short: "Stream employees row by row (gRPC stream or REST event stream)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch transport {
			case bench.TransportGRPC:
				return c.app.streamGRPC(cmd.Context(), max)
			case bench.TransportREST:
				return c.app.streamREST(cmd.Context(), max)
			}
			return fmt.Errorf("unknown transport %q", transport)
		},
	}
	stream.Flags().IntVar(&max, "max", 0, "maximum rows (0 means all)")

	var batchMax, batchSize int
	batches := &cobra.Command{
		Use:   "batches",
		Short: "Stream employees in batches over gRPC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if transport != bench.TransportGRPC {
				return fmt.Errorf("batches are only served over grpc")
			}
			return c.app.batchesGRPC(cmd.Context(), batchMax, batchSize)
		},
	}
	batches.Flags().IntVar(&batchMax, "max", 0, "maximum rows (0 means all)")
	batches.Flags().IntVar(&batchSize, "batch-size", 0, "rows per batch (0 means server default)")

	var page, pageSize int
	pageCmd := &cobra.Command{
		Use:   "page",
		Short: "Fetch one page of employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch transport {
			case bench.TransportGRPC:
				return c.app.pageGRPC(cmd.Context(), page, pageSize)
			case bench.TransportREST:
				return c.app.pageREST(cmd.Context(), page, pageSize)
			}
			return fmt.Errorf("unknown transport %q", transport)
		},
	}
	pageCmd.Flags().IntVar(&page, "page", 1, "page number (1-based)")
	pageCmd.Flags().IntVar(&pageSize, "page-size", 50, "rows per page")

	cmd.AddCommand(stream, batches, pageCmd)
	return cmd
}

func (a *App) withGRPC(ctx context.Context, scenario string, fn func(ctx context.Context, gc *client.GRPCClient) (int, error)) error {
	gc, err := a.grpcClient("")
	if err != nil {
		return err
	}
	defer gc.Close()

	return a.measure(ctx, scenario, bench.TransportGRPC, func(ctx context.Context) (bench.Result, error) {
		before := gc.BytesReceived()
		n, err := fn(ctx, gc)
		return bench.Result{Records: int64(n), Bytes: gc.BytesReceived() - before}, err
	})
}

func (a *App) streamGRPC(ctx context.Context, max int) error {
	return a.withGRPC(ctx, "employees-stream", func(ctx context.Context, gc *client.GRPCClient) (int, error) {
		return gc.StreamEmployees(ctx, int32(max), nil)
	})
}

func (a *App) batchesGRPC(ctx context.Context, max, batchSize int) error {
	return a.withGRPC(ctx, "employees-batches", func(ctx context.Context, gc *client.GRPCClient) (int, error) {
		return gc.StreamEmployeeBatches(ctx, int32(max), int32(batchSize), nil)
	})
}

func (a *App) pageGRPC(ctx context.Context, page, pageSize int) error {
	return a.withGRPC(ctx, "employees-page", func(ctx context.Context, gc *client.GRPCClient) (int, error) {
		p, err := gc.ListEmployees(ctx, int32(page), int32(pageSize))
		if err != nil {
			return 0, err
		}
		a.printPage(p.GetPage(), p.GetTotalPages(), p.GetTotalCount())
		return len(p.GetEmployees()), nil
	})
}

func (a *App) withREST(ctx context.Context, scenario string, fn func(ctx context.Context, rc *client.RESTClient) (int, error)) error {
	rc := a.restClient()
	return a.measure(ctx, scenario, bench.TransportREST, func(ctx context.Context) (bench.Result, error) {
		before := rc.BytesReceived()
		n, err := fn(ctx, rc)
		return bench.Result{Records: int64(n), Bytes: rc.BytesReceived() - before}, err
	})
}

func (a *App) streamREST(ctx context.Context, max int) error {
	return a.withREST(ctx, "employees-stream", func(ctx context.Context, rc *client.RESTClient) (int, error) {
		return rc.StreamEmployees(ctx, max, nil)
	})
}

func (a *App) pageREST(ctx context.Context, page, pageSize int) error {
	return a.withREST(ctx, "employees-page", func(ctx context.Context, rc *client.RESTClient) (int, error) {
		p, err := rc.ListEmployees(ctx, page, pageSize)
		if err != nil {
			return 0, err
		}
		a.printPage(int32(p.Page), int32(p.TotalPages), p.TotalCount)
		return len(p.Items), nil
	})
}

func (a *App) printPage(page, totalPages int32, totalCount int64) {
	fmt.Fprintf(a.out, "page %d of %d (%d employees)\n", page, totalPages, totalCount)
}

