package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/propbrief/internal/domain/disclosure"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
)

func newDisclosureCmd() *cobra.Command {
	var (
		tx   string
		role string
		name string
	)

	cmd := &cobra.Command{
		Use:     "disclosure",
		Short:   "Print the disclosure text for a transaction type and role",
		Example: `  propbrief disclosure --transaction sale --role owner --name "Ada Obi"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			text, err := disclosure.Generate(model.TransactionType(tx), model.SubmitterRole(role), name, env.rates)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&tx, "transaction", "", "Transaction type (sale, rent, joint-venture, shortlet)")
	cmd.Flags().StringVar(&role, "role", "owner", "Submitter role (owner or agent)")
	cmd.Flags().StringVar(&name, "name", "", "Submitter name")
	_ = cmd.MarkFlagRequired("transaction")
	return cmd
}
