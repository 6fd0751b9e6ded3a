// Package cli implements invoicectl, the offline companion to the invoice server.
package cli

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "invoicectl",
		Short:         "Render GST tax invoices without a server",
		Long:          "invoicectl turns an invoice JSON file into the printable tax invoice and spells amounts in Indian-system words.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newWordsCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
