package cli

import (
	"log/slog"

	"github.com/alexanderramin/dutylog/internal/platform/config"
	"github.com/alexanderramin/dutylog/internal/service"
	"github.com/spf13/cobra"
)

// App holds the wired service and process configuration used by CLI commands.
type App struct {
	Duty   service.DutyService
	Cfg    config.Config
	Logger *slog.Logger
}

// NewRootCmd creates the top-level "dutylog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dutylog",
		Short: "Duty log aggregation engine",
	}

	root.AddCommand(
		newServeCmd(app),
		newScanCmd(app),
		newAdminsCmd(app),
	)

	return root
}
