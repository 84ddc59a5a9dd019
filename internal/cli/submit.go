package cli

import (
	"fmt"

	"github.com/pulsemed/worklist/internal/usecase"
	"github.com/spf13/cobra"
)

// newSubmitCommand creates the submit command for entering tasks into the pool.
func newSubmitCommand(opts *rootOptions) *cobra.Command {
	var flags struct {
		Patient    string
		Context    string
		Urgency    string
		Visibility []string
		From       string
	}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a recording into the pending pool",
		Long: `Submit a recording into the pending pool.

The task starts pending and sorts into the available pool by urgency
band (critical, urgent, normal), oldest first within a band.

Examples:
  # Submit a routine recording
  worklist submit --patient patient-104 --context "routine follow-up"

  # Submit a critical recording restricted to two clinicians
  worklist submit --patient patient-990 --urgency critical \
    --visible-to dr-adams --visible-to dr-baker

  # Submit a batch from a YAML file
  worklist submit --from intake.yaml

File format for --from:
  - patient_ref: patient-104
    clinical_context: routine follow-up
    urgency: normal
  - patient_ref: patient-990
    urgency: critical
    visibility: [dr-adams, dr-baker]`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.container()
			if err != nil {
				return err
			}

			if flags.From != "" {
				n, err := submitSeedFile(cmd.Context(), c, flags.From)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Submitted %d task(s) from %s\n", n, flags.From)
				return nil
			}

			if flags.Patient == "" {
				return fmt.Errorf("required flag(s) \"patient\" not set")
			}

			out, err := c.SubmitTaskUseCase().Execute(cmd.Context(), usecase.SubmitTaskInput{
				PatientRef:      flags.Patient,
				ClinicalContext: flags.Context,
				Urgency:         flags.Urgency,
				Visibility:      flags.Visibility,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Submitted %s (%s, urgency %s)\n",
				out.Task.ReferenceCode, out.Task.ID, out.Task.Urgency)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.Patient, "patient", "", "Opaque patient reference")
	cmd.Flags().StringVar(&flags.Context, "context", "", "Clinical context payload")
	cmd.Flags().StringVar(&flags.Urgency, "urgency", "", "Urgency: normal, urgent or critical (default normal)")
	cmd.Flags().StringSliceVar(&flags.Visibility, "visible-to", nil, "Restrict visibility to these viewers (repeatable)")
	cmd.Flags().StringVar(&flags.From, "from", "", "Submit a batch of tasks from a YAML file")

	return cmd
}
