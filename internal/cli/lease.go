package cli

import (
	"fmt"
	"time"

	"github.com/pulsemed/worklist/internal/usecase"
	"github.com/spf13/cobra"
)

// newAcquireCommand creates the acquire command.
func newAcquireCommand(opts *rootOptions) *cobra.Command {
	var viewerFlag string

	cmd := &cobra.Command{
		Use:   "acquire <task-id>",
		Short: "Acquire an exclusive lease on a pending task",
		Long: `Acquire an exclusive lease on a pending task.

Exactly one viewer can hold a task at a time. The lease lasts the
configured duration; extend it before the deadline or the sweeper
returns the task to the pool and discards any unsaved draft.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.container()
			if err != nil {
				return err
			}

			out, err := c.AcquireTaskUseCase().Execute(cmd.Context(), usecase.AcquireTaskInput{
				TaskID: args[0],
				Viewer: viewerFromFlag(viewerFlag),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Acquired %s until %s\n",
				out.Task.ReferenceCode, out.Task.LeaseDeadline.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVarP(&viewerFlag, "viewer", "u", "", "Acting viewer identity (or WORKLIST_VIEWER)")

	return cmd
}

// newExtendCommand creates the extend command.
func newExtendCommand(opts *rootOptions) *cobra.Command {
	var viewerFlag string

	cmd := &cobra.Command{
		Use:   "extend <task-id>",
		Short: "Push your lease deadline out by the extension duration",
		Long: `Push your lease deadline out by the configured extension duration.

Extensions add to the current deadline, so extending early does not
shorten the total window. Only the current holder may extend.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.container()
			if err != nil {
				return err
			}

			out, err := c.ExtendLeaseUseCase().Execute(cmd.Context(), usecase.ExtendLeaseInput{
				TaskID: args[0],
				Viewer: viewerFromFlag(viewerFlag),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Extended %s to %s (extension #%d)\n",
				out.Task.ReferenceCode,
				out.Task.LeaseDeadline.Format(time.RFC3339),
				out.Task.ExtensionCount)
			return nil
		},
	}

	cmd.Flags().StringVarP(&viewerFlag, "viewer", "u", "", "Acting viewer identity (or WORKLIST_VIEWER)")

	return cmd
}

// newDraftCommand creates the draft command.
func newDraftCommand(opts *rootOptions) *cobra.Command {
	var viewerFlag string

	cmd := &cobra.Command{
		Use:   "draft <task-id> <text>",
		Short: "Save draft interpretation notes on your leased task",
		Long: `Save draft interpretation notes on your leased task.

Each save replaces the previous draft. The draft survives only while
the lease does: completion and expiry both discard it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.container()
			if err != nil {
				return err
			}

			out, err := c.SaveDraftUseCase().Execute(cmd.Context(), usecase.SaveDraftInput{
				TaskID: args[0],
				Viewer: viewerFromFlag(viewerFlag),
				Draft:  args[1],
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Draft saved on %s\n", out.Task.ReferenceCode)
			return nil
		},
	}

	cmd.Flags().StringVarP(&viewerFlag, "viewer", "u", "", "Acting viewer identity (or WORKLIST_VIEWER)")

	return cmd
}

// newCompleteCommand creates the complete command.
func newCompleteCommand(opts *rootOptions) *cobra.Command {
	var flags struct {
		Viewer   string
		Result   string
		Abnormal bool
	}

	cmd := &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Complete your leased task with a final interpretation",
		Long: `Complete your leased task with a final interpretation.

Completion is terminal: the task leaves the pool for good and the
completion event is handed to the notification collaborator. Flag
abnormal findings with --abnormal so downstream routing can escalate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.container()
			if err != nil {
				return err
			}

			out, err := c.CompleteTaskUseCase().Execute(cmd.Context(), usecase.CompleteTaskInput{
				TaskID:   args[0],
				Viewer:   viewerFromFlag(flags.Viewer),
				Result:   flags.Result,
				Abnormal: flags.Abnormal,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed %s\n", out.Task.ReferenceCode)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Viewer, "viewer", "u", "", "Acting viewer identity (or WORKLIST_VIEWER)")
	cmd.Flags().StringVar(&flags.Result, "result", "", "Final interpretation text")
	cmd.Flags().BoolVar(&flags.Abnormal, "abnormal", false, "Flag the finding as abnormal")
	_ = cmd.MarkFlagRequired("result")

	return cmd
}
