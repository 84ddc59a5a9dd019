package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pulsemed/worklist/internal/domain"
	"github.com/pulsemed/worklist/internal/usecase"
	"github.com/spf13/cobra"
)

// newShowCommand creates the show command.
func newShowCommand(opts *rootOptions) *cobra.Command {
	var viewerFlag string

	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show the details of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.container()
			if err != nil {
				return err
			}

			out, err := c.GetTaskUseCase().Execute(cmd.Context(), usecase.GetTaskInput{
				TaskID: args[0],
				Viewer: viewerFromFlag(viewerFlag),
			})
			if err != nil {
				return err
			}

			renderTask(cmd.OutOrStdout(), out.Task)
			return nil
		},
	}

	cmd.Flags().StringVarP(&viewerFlag, "viewer", "u", "", "Acting viewer identity (or WORKLIST_VIEWER)")

	return cmd
}

func renderTask(w io.Writer, t *domain.Task) {
	_, _ = fmt.Fprintf(w, "Reference:  %s\n", t.ReferenceCode)
	_, _ = fmt.Fprintf(w, "ID:         %s\n", t.ID)
	_, _ = fmt.Fprintf(w, "Patient:    %s\n", t.PatientRef)
	_, _ = fmt.Fprintf(w, "Urgency:    %s\n", t.Urgency.Display())
	_, _ = fmt.Fprintf(w, "Status:     %s\n", t.Status.Display())
	_, _ = fmt.Fprintf(w, "Submitted:  %s\n", t.SubmittedAt.Format(time.RFC3339))
	if t.ClinicalContext != "" {
		_, _ = fmt.Fprintf(w, "Context:    %s\n", t.ClinicalContext)
	}
	if len(t.Visibility) > 0 {
		_, _ = fmt.Fprintf(w, "Visible to: %s\n", strings.Join(t.Visibility, ", "))
	}
	if t.Status == domain.StatusLeased {
		_, _ = fmt.Fprintf(w, "Held by:    %s\n", t.LeaseHolder)
		_, _ = fmt.Fprintf(w, "Deadline:   %s (extended %d time(s))\n",
			t.LeaseDeadline.Format(time.RFC3339), t.ExtensionCount)
	}
	if t.Draft != "" {
		_, _ = fmt.Fprintf(w, "Draft:      %s\n", t.Draft)
	}
	if t.Status == domain.StatusCompleted {
		_, _ = fmt.Fprintf(w, "Completed:  %s by %s\n", t.CompletedAt.Format(time.RFC3339), t.CompletedBy)
		_, _ = fmt.Fprintf(w, "Result:     %s\n", t.Result)
	}
}
