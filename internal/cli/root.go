// Package cli implements the numlocktray commands.
package cli

import (
	"log"

	"github.com/spf13/cobra"
)

var autostarted bool

var rootCmd = &cobra.Command{
	Use:   "numlocktray",
	Short: "Show the Num Lock state in the system tray",
	Long: `NumLockTray shows the keyboard Num Lock state as a system tray icon.

Launched by hand it first offers a short setup dialog to start with the
system and, on Linux, to add itself to the application menu. The
--autostart flag, used by the login registration, skips that dialog.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTray(autostarted)
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVar(&autostarted, "autostart", false, "Launched by the login autostart entry (skips the setup dialog)")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(autostartCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogging() {
	log.SetPrefix("[numlocktray] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}
