package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/numlocktray/internal/config"
	"github.com/watchfire-io/numlocktray/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show the effective settings",
	RunE:    runSettingsShow,
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	RunE:  runSettingsInit,
}

var settingsForce bool

func init() {
	settingsInitCmd.Flags().BoolVarP(&settingsForce, "force", "f", false, "Overwrite an existing settings file")
	settingsCmd.AddCommand(settingsInitCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	path, err := config.GlobalSettingsFile()
	if err != nil {
		return err
	}
	settings, err := config.LoadSettingsFrom(path)
	if err != nil {
		return err
	}

	source := "defaults"
	if config.FileExists(path) {
		source = path
	}

	asset := settings.Icon.Asset
	if asset == "" {
		asset = config.IconAssetPath() + " (default)"
	}

	printField("file", source)
	printField("poll_interval", settings.PollInterval.String())
	printField("icon.asset", asset)
	printField("icon.inactive_color", settings.Icon.InactiveColor)
	printField("notifications.on_change", fmt.Sprintf("%t", settings.Notifications.OnChange))
	return nil
}

func runSettingsInit(cmd *cobra.Command, args []string) error {
	path, err := config.GlobalSettingsFile()
	if err != nil {
		return err
	}
	if config.FileExists(path) && !settingsForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.SaveSettings(models.NewSettings()); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println(styleSuccess.Render("Wrote " + path))
	return nil
}

func printField(label, value string) {
	fmt.Printf("%s %s\n", styleLabel.Width(26).Render(label), styleValue.Render(value))
}
