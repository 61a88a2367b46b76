package cli

import (
	"fmt"

	"github.com/samuelfneumann/cabdriver/environment/cabdriver"
	"github.com/spf13/cobra"
)

// Spaces prints the sizes of the state and action spaces and of their
// encodings. If list is true, every action is printed with its index.
func Spaces(cmd *cobra.Command, list bool) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := cabdriver.NewMDP(c.MDP, seed)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "states: %d\n", len(m.States()))
	fmt.Fprintf(out, "actions: %d\n", len(m.Actions()))
	fmt.Fprintf(out, "state features: %d\n", c.MDP.StateFeatures())
	fmt.Fprintf(out, "state-action features: %d\n",
		c.MDP.StateActionFeatures())

	if list {
		for i, a := range m.Actions() {
			fmt.Fprintf(out, "%3d %v\n", i, a)
		}
	}
	return nil
}

// SpacesCommand returns the command which describes the state and
// action spaces
func SpacesCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "spaces",
		Short: "Describe the state and action spaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Spaces(cmd, list)
		},
	}
	cmd.PersistentFlags().BoolVarP(&list, "list", "l", false,
		"List every action")
	return cmd
}
