package cli

import (
	"fmt"

	"github.com/dmitrijs2005/transferbench/internal/client/bench"
	"github.com/spf13/cobra"
)

func (c *CLI) newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Inspect stored benchmark reports",
	}

	var (
		scenario string
		limit    int
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List reports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reps, err := c.app.listReports(cmd.Context(), scenario, limit)
			if err != nil {
				return err
			}
			if len(reps) == 0 {
				fmt.Fprintln(c.out, "no reports")
				return nil
			}
			return bench.Print(c.out, reps...)
		},
	}
	list.Flags().StringVar(&scenario, "scenario", "", "only this scenario")
	list.Flags().IntVar(&limit, "limit", 20, "maximum reports (0 means all)")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.app.reports == nil {
				return fmt.Errorf("report database disabled (--reports-db is empty)")
			}
			return c.app.reports.Clear(cmd.Context())
		},
	}

	cmd.AddCommand(list, clearCmd)
	return cmd
}
