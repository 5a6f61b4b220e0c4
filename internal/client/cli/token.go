package cli

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/transferbench/internal/server/auth"
	"github.com/spf13/cobra"
)

func (c *CLI) newTokenCmd() *cobra.Command {
	var (
		secret string
		name   string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:         "token",
		Short:       "Mint an access token for a server started with a secret key",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"standalone": "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if secret == "" {
				return fmt.Errorf("--secret is required")
			}
			tok, err := auth.GenerateToken(name, []byte(secret), ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "server secret key")
	cmd.Flags().StringVar(&name, "client", "transferbench", "client name carried in the token")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
