package cli

import (
	"fmt"

	"go-invoice-maker/internal/config"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show invoicectl version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "invoicectl %s\n", config.Version)
			return nil
		},
	}
}
