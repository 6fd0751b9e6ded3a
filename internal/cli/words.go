package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go-invoice-maker/internal/words"

	"github.com/spf13/cobra"
)

func newWordsCmd() *cobra.Command {
	var upper bool

	cmd := &cobra.Command{
		Use:   "words <amount>",
		Short: "Spell a rupee amount in words",
		Example: `  invoicectl words 236
  invoicectl words 1234567.50 --upper`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(strings.ReplaceAll(args[0], ",", ""), 64)
			if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			if amount < 0 {
				return fmt.Errorf("amount must not be negative, got %s", args[0])
			}
			if amount > words.MaxAmount {
				return fmt.Errorf("amount must not exceed %.0f, got %s", words.MaxAmount, args[0])
			}

			out := words.FromAmount(amount)
			if upper {
				out = strings.ToUpper(out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&upper, "upper", false, "print in capitals, as on the invoice")
	return cmd
}
