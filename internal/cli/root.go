// Package cli provides the command-line interface for worklist.
package cli

import (
	"os"

	"github.com/pulsemed/worklist/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup  = "setup"
	groupTask   = "task"
	groupLease  = "lease"
	groupServer = "server"
)

// newContainerFunc is a function variable for building the container,
// allowing it to be mocked in tests.
var newContainerFunc = app.New

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	store      string
}

// container builds the dependency injection container from the persistent
// flags. It is called after flag parsing, inside each command's RunE.
func (o *rootOptions) container() (*app.Container, error) {
	return newContainerFunc(o.configPath, o.store)
}

// NewRootCommand creates the root command for worklist.
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "worklist",
		Short: "Task leasing engine for interpretation worklists",
		Long: `worklist is the task leasing and scheduling engine behind the
interpretation dashboard. Recordings enter a shared pending pool; a
clinician acquires a time-limited exclusive lease on one task, works it,
and either completes it or lets the lease lapse back into the pool.

Viewer identity is an opaque key. Commands that act on tasks take it
from --viewer, or from the WORKLIST_VIEWER environment variable.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "worklist.toml", "Path to the config file")
	root.PersistentFlags().StringVar(&opts.store, "store", "", "Override the store type (memory or json)")

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupLease, Title: "Lease Commands:"},
		&cobra.Group{ID: groupServer, Title: "Server Commands:"},
	)

	initCmd := newInitCommand(opts)
	initCmd.GroupID = groupSetup

	submitCmd := newSubmitCommand(opts)
	submitCmd.GroupID = groupTask

	listCmd := newListCommand(opts)
	listCmd.GroupID = groupTask

	showCmd := newShowCommand(opts)
	showCmd.GroupID = groupTask

	acquireCmd := newAcquireCommand(opts)
	acquireCmd.GroupID = groupLease

	extendCmd := newExtendCommand(opts)
	extendCmd.GroupID = groupLease

	draftCmd := newDraftCommand(opts)
	draftCmd.GroupID = groupLease

	completeCmd := newCompleteCommand(opts)
	completeCmd.GroupID = groupLease

	sweepCmd := newSweepCommand(opts)
	sweepCmd.GroupID = groupServer

	serveCmd := newServeCommand(opts)
	serveCmd.GroupID = groupServer

	root.AddCommand(
		initCmd,
		submitCmd,
		listCmd,
		showCmd,
		acquireCmd,
		extendCmd,
		draftCmd,
		completeCmd,
		sweepCmd,
		serveCmd,
	)

	return root
}

// viewerFromFlag resolves the acting viewer: the --viewer flag wins,
// then the WORKLIST_VIEWER environment variable.
func viewerFromFlag(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("WORKLIST_VIEWER")
}
