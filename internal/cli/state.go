package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/numlocktray/internal/lockstate"
)

var stateVerbose bool

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the current Num Lock state",
	RunE: func(cmd *cobra.Command, args []string) error {
		chain := lockstate.Default()

		if stateVerbose {
			for _, r := range chain.Explain() {
				if r.Err != nil {
					fmt.Printf("%s %s\n", styleLabel.Render(r.Strategy+":"), styleError.Render(r.Err.Error()))
					continue
				}
				fmt.Printf("%s %s\n", styleLabel.Render(r.Strategy+":"), formatState(lockstate.FromBool(r.On)))
			}
		}

		fmt.Printf("%s %s\n", styleBrand.Render("Num Lock:"), formatState(chain.Query()))
		return nil
	},
}

func init() {
	stateCmd.Flags().BoolVarP(&stateVerbose, "verbose", "v", false, "Show the result of every query strategy")
}

func formatState(s lockstate.State) string {
	switch s {
	case lockstate.On:
		return styleSuccess.Render(s.String())
	case lockstate.Off:
		return styleWarning.Render(s.String())
	default:
		return styleHint.Render(s.String())
	}
}
