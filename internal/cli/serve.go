package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/pulsemed/worklist/internal/httpapi"
	"github.com/spf13/cobra"
)

// shutdownTimeout bounds the drain of in-flight requests on exit.
const shutdownTimeout = 10 * time.Second

// newServeCommand creates the serve command.
func newServeCommand(opts *rootOptions) *cobra.Command {
	var flags struct {
		Addr string
		Seed string
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the worklist API server with the background sweeper",
		Long: `Run the worklist API server.

The expiry sweeper runs alongside the server at the configured
interval. SIGINT or SIGTERM stops the sweeper and drains in-flight
requests before exiting.

Examples:
  # Serve on the configured address
  worklist serve

  # Serve on a specific address with demo data
  worklist serve --addr :9000 --seed intake.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.container()
			if err != nil {
				return err
			}
			if flags.Addr != "" {
				c.Config.Server.Addr = flags.Addr
			}

			if err := c.StoreInitializer.Initialize(); err != nil {
				return fmt.Errorf("initialize store: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if flags.Seed != "" {
				n, err := submitSeedFile(ctx, c, flags.Seed)
				if err != nil {
					return fmt.Errorf("seed store: %w", err)
				}
				c.Logger.Info("seeded store", "tasks", n, "file", flags.Seed)
			}

			srv := httpapi.NewServer(c, c.Logger)

			sweeperDone := make(chan struct{})
			go func() {
				defer close(sweeperDone)
				c.Sweeper().Run(ctx)
			}()

			serveErr := make(chan error, 1)
			go func() {
				serveErr <- srv.ListenAndServe()
			}()

			select {
			case err := <-serveErr:
				stop()
				<-sweeperDone
				return err
			case <-ctx.Done():
			}

			c.Logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			<-sweeperDone
			return <-serveErr
		},
	}

	cmd.Flags().StringVar(&flags.Addr, "addr", "", "Listen address (overrides the config)")
	cmd.Flags().StringVar(&flags.Seed, "seed", "", "Submit tasks from a YAML file before serving")

	return cmd
}
