package cli

import (
	"fmt"

	"github.com/pulsemed/worklist/internal/usecase"
	"github.com/spf13/cobra"
)

// newSweepCommand creates the sweep command.
func newSweepCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run one expiry pass over leased tasks",
		Long: `Run one expiry pass over leased tasks.

Tasks whose lease deadline has passed return to the pending pool with
their draft discarded. The serve command runs this continuously; the
one-shot form suits cron-style setups against the json store.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.container()
			if err != nil {
				return err
			}

			out, err := c.ExpireLeasesUseCase().Execute(cmd.Context(), usecase.ExpireLeasesInput{})
			if err != nil {
				return err
			}

			if len(out.Reclaimed) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No lapsed leases.")
				return nil
			}
			for _, t := range out.Reclaimed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reclaimed %s\n", t.ReferenceCode)
			}
			return nil
		},
	}
}
