package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pulsemed/worklist/internal/app"
	"github.com/pulsemed/worklist/internal/usecase"
	"gopkg.in/yaml.v3"
)

// seedEntry is one task in a YAML seed file.
type seedEntry struct {
	PatientRef      string   `yaml:"patient_ref"`
	ClinicalContext string   `yaml:"clinical_context"`
	Urgency         string   `yaml:"urgency"`
	Visibility      []string `yaml:"visibility"`
}

// loadSeedFile parses a YAML seed file into submit inputs.
//
// File format:
//
//	- patient_ref: patient-104
//	  clinical_context: routine follow-up
//	  urgency: normal
//	- patient_ref: patient-990
//	  urgency: critical
//	  visibility: [dr-adams, dr-baker]
func loadSeedFile(path string) ([]usecase.SubmitTaskInput, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries []seedEntry
	if err := yaml.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	inputs := make([]usecase.SubmitTaskInput, 0, len(entries))
	for i, e := range entries {
		if e.PatientRef == "" {
			return nil, fmt.Errorf("seed entry %d: patient_ref is required", i+1)
		}
		inputs = append(inputs, usecase.SubmitTaskInput{
			PatientRef:      e.PatientRef,
			ClinicalContext: e.ClinicalContext,
			Urgency:         e.Urgency,
			Visibility:      e.Visibility,
		})
	}
	return inputs, nil
}

// submitSeedFile submits every task in the seed file and returns the count.
func submitSeedFile(ctx context.Context, c *app.Container, path string) (int, error) {
	inputs, err := loadSeedFile(path)
	if err != nil {
		return 0, err
	}

	uc := c.SubmitTaskUseCase()
	for i, in := range inputs {
		if _, err := uc.Execute(ctx, in); err != nil {
			return i, fmt.Errorf("seed entry %d: %w", i+1, err)
		}
	}
	return len(inputs), nil
}
