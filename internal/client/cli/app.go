package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/transferbench/internal/client/bench"
	"github.com/dmitrijs2005/transferbench/internal/client/client"
	"github.com/dmitrijs2005/transferbench/internal/client/config"
	"github.com/dmitrijs2005/transferbench/internal/client/models"
	"github.com/dmitrijs2005/transferbench/internal/client/repositories/reports"
	"github.com/dmitrijs2005/transferbench/internal/client/ui"
	"github.com/dmitrijs2005/transferbench/internal/dbx"
	"google.golang.org/grpc"
)

type App struct {
	config  *config.Config
	out     io.Writer
	errOut  io.Writer
	runner  *bench.Runner
	db      *sql.DB
	reports reports.Repository

	// dialOptions and httpClient are replaced in tests.
	dialOptions []grpc.DialOption
	httpClient  *http.Client
}

func NewApp(ctx context.Context, c *config.Config, out, errOut io.Writer) (*App, error) {
	a := &App{config: c, out: out, errOut: errOut, runner: bench.NewRunner(), httpClient: http.DefaultClient}

	if c.ReportsDB != "" {
		db, err := client.InitDatabase(ctx, c.ReportsDB)
		if err != nil {
			return nil, fmt.Errorf("error initializing report database: %w", err)
		}
		a.db = db
		a.reports = reports.NewSQLiteRepository(db)
	}

	return a, nil
}

func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// progress returns a progress bar when enabled and stderr is a terminal.
func (a *App) progress(operation string) client.Progress {
	if !a.config.Progress {
		return nil
	}
	f, ok := a.errOut.(*os.File)
	if !ok || !ui.IsTerminal(f) {
		return nil
	}
	return ui.NewProgressBar(f, operation)
}

func (a *App) grpcClient(operation string) (*client.GRPCClient, error) {
	opts := []client.Option{
		client.WithAccessToken(a.config.AccessToken),
		client.WithCompressor(a.config.Compress),
		client.WithDownloadsDir(a.config.DownloadsDir),
		client.WithDialOptions(a.dialOptions...),
	}
	if p := a.progress(operation); p != nil {
		opts = append(opts, client.WithProgress(p))
	}
	return client.NewGRPCClient(a.config.GRPCAddr, opts...)
}

func (a *App) restClient() *client.RESTClient {
	c := client.NewRESTClient(a.config.HTTPAddr, a.httpClient)
	c.SetDownloadsDir(a.config.DownloadsDir)
	c.SetAccessToken(a.config.AccessToken)
	return c
}

// measure runs fn through the bench runner config.Repeat times, stopping at
// the first failure, then prints and stores the reports. The driver error, if
// any, is returned after the reports were recorded.
func (a *App) measure(ctx context.Context, scenario, transport string, fn bench.Func) error {
	var (
		reps []models.Report
		err  error
	)
	for i := 0; i < max(a.config.Repeat, 1); i++ {
		var rep models.Report
		rep, err = a.runner.Run(ctx, scenario, transport, fn)
		reps = append(reps, rep)
		if err != nil {
			break
		}
	}

	if perr := bench.Print(a.out, reps...); perr != nil {
		return perr
	}
	// a cancelled run is still recorded
	if serr := a.saveReports(context.WithoutCancel(ctx), reps); serr != nil {
		fmt.Fprintf(a.errOut, "warning: reports not saved: %v\n", serr)
	}
	return err
}

// saveReports stores reps atomically.
func (a *App) saveReports(ctx context.Context, reps []models.Report) error {
	if a.db == nil {
		return nil
	}
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := reports.NewSQLiteRepository(tx)
		for i := range reps {
			if err := repo.Save(ctx, &reps[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (a *App) listReports(ctx context.Context, scenario string, limit int) ([]models.Report, error) {
	if a.reports == nil {
		return nil, fmt.Errorf("report database disabled (--reports-db is empty)")
	}
	return a.reports.List(ctx, scenario, limit)
}
