package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go-invoice-maker/internal/config"
	"go-invoice-maker/internal/document"
	"go-invoice-maker/internal/invoice"

	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		inPath         string
		letterheadPath string
		format         string
		outPath        string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an invoice JSON file as PDF, text or page JSON",
		Example: `  invoicectl render --in inv-001.json --out inv-001.pdf
  invoicectl render --in inv-001.json --letterhead letterhead.yaml --format text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "pdf" && format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q (want pdf, text or json)", format)
			}

			// 1. Read the invoice as a draft so the same validation applies
			data, err := os.ReadFile(inPath)
			if err != nil {
				return fmt.Errorf("reading invoice: %w", err)
			}
			var draft invoice.Draft
			if err := json.Unmarshal(data, &draft); err != nil {
				return fmt.Errorf("parsing %s: %w", inPath, err)
			}
			draft.Recompute()
			inv, err := draft.Freeze()
			if err != nil {
				return err
			}

			// 2. Lay out the page
			lh, err := config.LoadLetterhead(letterheadPath)
			if err != nil {
				return err
			}
			page := document.Render(inv, lh)

			// 3. Export
			var buf bytes.Buffer
			switch format {
			case "pdf":
				err = document.WritePDF(&buf, page)
			case "text":
				err = document.WriteText(&buf, page)
			case "json":
				enc := json.NewEncoder(&buf)
				enc.SetIndent("", "  ")
				err = enc.Encode(page)
			}
			if err != nil {
				return fmt.Errorf("rendering %s: %w", format, err)
			}

			if outPath == "" || outPath == "-" {
				_, err = io.Copy(cmd.OutOrStdout(), &buf)
				return err
			}
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Invoice %s written to %s\n", inv.Number, outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "invoice JSON file")
	cmd.Flags().StringVar(&letterheadPath, "letterhead", "", "letterhead YAML file (built-in default when empty)")
	cmd.Flags().StringVar(&format, "format", "pdf", "output format: pdf, text or json")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (stdout when empty or -)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
