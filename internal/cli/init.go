package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newInitCommand creates the init command.
func newInitCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the task store",
		Long: `Initialize the task store.

For the json store this creates an empty store file at the configured
path. Re-running against an existing store is a no-op. The in-memory
store needs no initialization.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.container()
			if err != nil {
				return err
			}

			if err := c.StoreInitializer.Initialize(); err != nil {
				return err
			}

			switch c.Config.Store.Type {
			case "json":
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized worklist store at %s\n", c.Config.Store.Path)
			default:
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Initialized in-memory store (state is per-process)")
			}
			return nil
		},
	}
}
