package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions [state [lga]]",
		Short: "List states, local governments of a state, or areas of a local government",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}

			var items []string
			switch len(args) {
			case 0:
				items = env.regions.States()
			case 1:
				items = env.regions.LGAs(args[0])
				if items == nil {
					return fmt.Errorf("unknown state: %s", args[0])
				}
			default:
				if env.regions.LGAs(args[0]) == nil {
					return fmt.Errorf("unknown state: %s", args[0])
				}
				items = env.regions.Areas(args[0], args[1])
			}

			for _, item := range items {
				fmt.Fprintln(cmd.OutOrStdout(), item)
			}
			return nil
		},
	}
}
