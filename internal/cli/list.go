package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/pulsemed/worklist/internal/domain"
	"github.com/pulsemed/worklist/internal/usecase"
	"github.com/spf13/cobra"
)

// newListCommand creates the list command.
func newListCommand(opts *rootOptions) *cobra.Command {
	var flags struct {
		Viewer string
		Mine   bool
		Status string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available pool, or your own tasks with --mine",
		Long: `List tasks.

Without --mine this shows the available pool for the viewer: pending
tasks the viewer may see, critical first, then urgent, then normal,
oldest first within each band.

With --mine it shows the viewer's own tasks instead. --status narrows
that to "leased" or "completed".`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			viewer := viewerFromFlag(flags.Viewer)
			c, err := opts.container()
			if err != nil {
				return err
			}

			if flags.Mine {
				out, err := c.ListMineUseCase().Execute(cmd.Context(), usecase.ListMineInput{
					Viewer: viewer,
					Status: flags.Status,
				})
				if err != nil {
					return err
				}
				renderMine(cmd.OutOrStdout(), out.Tasks)
				return nil
			}

			if flags.Status != "" {
				return fmt.Errorf("--status requires --mine")
			}

			out, err := c.ListAvailableUseCase().Execute(cmd.Context(), usecase.ListAvailableInput{
				Viewer: viewer,
			})
			if err != nil {
				return err
			}
			renderPool(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Viewer, "viewer", "u", "", "Acting viewer identity (or WORKLIST_VIEWER)")
	cmd.Flags().BoolVar(&flags.Mine, "mine", false, "Show the viewer's leased and completed tasks")
	cmd.Flags().StringVar(&flags.Status, "status", "", "With --mine: narrow to \"leased\" or \"completed\"")

	return cmd
}

func renderPool(w io.Writer, tasks []*domain.Task) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks available.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "REF\tURGENCY\tPATIENT\tSUBMITTED\tID")
	for _, t := range tasks {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			t.ReferenceCode,
			t.Urgency.Display(),
			t.PatientRef,
			t.SubmittedAt.Format(time.RFC3339),
			t.ID,
		)
	}
	_ = tw.Flush()
}

func renderMine(w io.Writer, tasks []*domain.Task) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "REF\tSTATUS\tURGENCY\tPATIENT\tDEADLINE\tID")
	for _, t := range tasks {
		deadline := "-"
		if t.Status == domain.StatusLeased {
			deadline = t.LeaseDeadline.Format(time.RFC3339)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ReferenceCode,
			t.Status.Display(),
			t.Urgency.Display(),
			t.PatientRef,
			deadline,
			t.ID,
		)
	}
	_ = tw.Flush()
}
