package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/transferbench/internal/client/bench"
	"github.com/dmitrijs2005/transferbench/internal/client/client"
	"github.com/spf13/cobra"
)

func (c *CLI) newUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a payroll file over the gRPC client stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.upload(cmd.Context(), args[0])
		},
	}
}

func (a *App) upload(ctx context.Context, path string) error {
	gc, err := a.grpcClient("Uploading")
	if err != nil {
		return err
	}
	defer gc.Close()

	return a.measure(ctx, "upload", bench.TransportGRPC, func(ctx context.Context) (bench.Result, error) {
		res, err := gc.Upload(ctx, path)
		if res == nil {
			return bench.Result{}, err
		}
		if err == nil {
			fmt.Fprintf(a.out, "uploaded %s: %d bytes in %d chunks, checksum %s\n",
				res.Name, res.BytesReceived, res.Chunks, res.Checksum)
		}
		return bench.Result{Records: int64(res.Chunks), Bytes: res.BytesSent}, err
	})
}

func (c *CLI) newDownloadCmd() *cobra.Command {
	var (
		transport string
		presigned bool
	)
	cmd := &cobra.Command{
		Use:   "download <name>",
		Short: "Download a payroll file into the downloads directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch transport {
			case bench.TransportGRPC:
				if presigned {
					return fmt.Errorf("--presigned needs --transport rest")
				}
				return c.app.downloadGRPC(cmd.Context(), args[0])
			case bench.TransportREST:
				return c.app.downloadREST(cmd.Context(), args[0], presigned)
			default:
				return fmt.Errorf("unknown transport %q", transport)
			}
		},
	}
	cmd.Flags().StringVar(&transport, "transport", bench.TransportGRPC, "grpc or rest")
	cmd.Flags().BoolVar(&presigned, "presigned", false, "fetch through a presigned object URL (rest only)")
	return cmd
}

func (a *App) downloadGRPC(ctx context.Context, name string) error {
	gc, err := a.grpcClient("Downloading")
	if err != nil {
		return err
	}
	defer gc.Close()

	return a.measure(ctx, "download", bench.TransportGRPC, func(ctx context.Context) (bench.Result, error) {
		res, err := gc.Download(ctx, name)
		return a.downloaded(res, err)
	})
}

func (a *App) downloadREST(ctx context.Context, name string, presigned bool) error {
	rc := a.restClient()
	scenario := "download"
	if presigned {
		scenario = "download-presigned"
	}

	return a.measure(ctx, scenario, bench.TransportREST, func(ctx context.Context) (bench.Result, error) {
		res, err := rc.DownloadPayroll(ctx, name, presigned)
		return a.downloaded(res, err)
	})
}

func (a *App) downloaded(res *client.DownloadResult, err error) (bench.Result, error) {
	if res == nil {
		return bench.Result{}, err
	}
	if err == nil {
		fmt.Fprintf(a.out, "downloaded %s: %d bytes to %s\n", res.Name, res.Bytes, res.Path)
	}
	return bench.Result{Records: int64(res.Chunks), Bytes: res.Bytes}, err
}
