package cli

import (
	"context"
	"io"

	"github.com/dmitrijs2005/transferbench/internal/client/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CLI is the client command tree together with the App built for the
// running command.
type CLI struct {
	root    *cobra.Command
	v       *viper.Viper
	cfgFile string
	out     io.Writer
	errOut  io.Writer

	app    *App
	cancel context.CancelFunc
	// setup is applied to the App right after it was built.
	setup func(*App)
}

func New(out, errOut io.Writer) *CLI {
	c := &CLI{v: viper.New(), out: out, errOut: errOut}

	c.root = &cobra.Command{
		Use:   "transferbench",
		Short: "transferbench - gRPC vs REST transfer benchmarks",
		Long: `transferbench drives the transferbench server over gRPC and REST and
reports throughput, latency and memory use of every call.

Examples:
  transferbench upload ./payroll.csv
  transferbench download payroll.csv --transport rest
  transferbench employees stream --max 10000
  transferbench report list`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.prepare,
	}
	c.root.SetOut(out)
	c.root.SetErr(errOut)

	c.root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (YAML or JSON)")
	cobra.CheckErr(config.BindFlags(c.root.PersistentFlags(), c.v))

	c.root.AddCommand(
		c.newUploadCmd(),
		c.newDownloadCmd(),
		c.newEmployeesCmd(),
		c.newChatCmd(),
		c.newPingCmd(),
		c.newTokenCmd(),
		c.newReportCmd(),
	)
	return c
}

// prepare loads the configuration and builds the App. Commands that need no
// server or database skip it via the "standalone" annotation.
func (c *CLI) prepare(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations["standalone"] == "true" {
		return nil
	}

	cfg, err := config.LoadConfig(c.v, c.cfgFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if cfg.Timeout > 0 {
		ctx, c.cancel = context.WithTimeout(ctx, cfg.Timeout)
		cmd.SetContext(ctx)
	}

	c.app, err = NewApp(ctx, cfg, c.out, c.errOut)
	if err != nil {
		return err
	}
	if c.setup != nil {
		c.setup(c.app)
	}
	return nil
}

// Execute runs the command selected by args and releases the App afterwards.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	c.root.SetArgs(args)
	defer func() {
		if c.cancel != nil {
			c.cancel()
		}
		if c.app != nil {
			_ = c.app.Close()
		}
	}()
	return c.root.ExecuteContext(ctx)
}
