package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/dutylog/internal/cli/formatter"
	"github.com/alexanderramin/dutylog/internal/domain"
	"github.com/spf13/cobra"
)

func newAdminsCmd(app *App) *cobra.Command {
	var date, from, to string

	cmd := &cobra.Command{
		Use:   "admins",
		Short: "Print per-admin duty totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			stats, err := listFor(ctx, app, date, from, to)
			if err != nil {
				return err
			}
			fmt.Print(formatter.AdminsTable(stats))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Restrict to one UTC day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, requires --to)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, requires --from)")
	return cmd
}

func listFor(ctx context.Context, app *App, date, from, to string) ([]domain.AggregateStat, error) {
	switch {
	case date != "":
		return app.Duty.ListAdminsByDate(ctx, date)
	case from != "" || to != "":
		return app.Duty.ListAdminsByRange(ctx, from, to)
	default:
		return app.Duty.ListAdmins(ctx)
	}
}
