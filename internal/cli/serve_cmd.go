package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexanderramin/dutylog/internal/platform/httpserver"
	httptransport "github.com/alexanderramin/dutylog/internal/transport/http"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Cfg.Addr
			}

			router := httptransport.NewRouter(httptransport.NewHandler(app.Duty))
			srv := httpserver.New(addr, router)

			app.Logger.Info("starting dutylog server", "addr", addr)

			errCh := make(chan error, 1)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt)

			select {
			case err := <-errCh:
				return err
			case <-quit:
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to DUTYLOG_ADDR or :8080)")
	return cmd
}
