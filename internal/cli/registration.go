package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/numlocktray/internal/registrar"
)

var autostartCmd = newRegistrationCmd("autostart", "Manage start at login",
	func(c *components) registrar.Registrar { return c.autostart })

var menuCmd = newRegistrationCmd("menu", "Manage the application menu entry (Linux)",
	func(c *components) registrar.Registrar { return c.appMenu })

// newRegistrationCmd builds a status/enable/disable command group for one registrar.
func newRegistrationCmd(name, short string, pick func(*components) registrar.Registrar) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether the registration exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := pick(loadComponents())
			printRegistration(name, r)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "enable",
		Short: "Create the registration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return setRegistration(name, pick(loadComponents()), true)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "disable",
		Short: "Remove the registration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return setRegistration(name, pick(loadComponents()), false)
		},
	})
	return cmd
}

func setRegistration(name string, r registrar.Registrar, enable bool) error {
	if !r.Supported() {
		return fmt.Errorf("%s registration is not supported on this platform", name)
	}
	if err := r.SetEnabled(enable); err != nil {
		return fmt.Errorf("failed to update %s registration: %w", name, err)
	}
	printRegistration(name, r)
	return nil
}

func printRegistration(name string, r registrar.Registrar) {
	fmt.Printf("%s %s\n", styleLabel.Render(name+":"), registrationStatus(r))
	if located, ok := r.(registrar.Located); ok {
		fmt.Printf("%s %s\n", styleLabel.Render("path:"), styleValue.Render(located.Path()))
	}
}

func registrationStatus(r registrar.Registrar) string {
	switch {
	case !r.Supported():
		return styleHint.Render("unsupported")
	case r.IsEnabled():
		return styleSuccess.Render("enabled")
	default:
		return styleWarning.Render("disabled")
	}
}
