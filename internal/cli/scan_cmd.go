package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/dutylog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newScanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Refetch the full duty log history from the message source",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Duty.Rescan(context.Background())
			if err != nil {
				return err
			}

			fmt.Print(formatter.ScanSummary(len(stats)))
			fmt.Print(formatter.AdminsTable(stats))
			return nil
		},
	}
}
