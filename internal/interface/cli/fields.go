package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/propbrief/internal/application/dto"
	"github.com/YoshitsuguKoike/propbrief/internal/application/usecase/wizardflow"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/wizard"
)

func newFieldsCmd() *cobra.Command {
	var (
		flow           string
		discriminators map[string]string
		asJSON         bool
	)

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Show the steps and visible fields for a set of discriminators",
		Example: `  propbrief fields --flow brief -d transactionType=rent -d rentalType=lease
  propbrief fields --flow preference -d transactionType=shortlet --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			c, err := env.catalog(flow)
			if err != nil {
				return err
			}
			ev, err := wizardflow.DecodeEvent(c, dto.EventInput{Type: wizardflow.EventSeed, Discriminators: discriminators})
			if err != nil {
				return err
			}
			st := wizard.NewState(c, ev.(wizard.Seed))

			views := make([]dto.StepDTO, 0)
			for _, step := range c.Steps(st.Discriminators) {
				views = append(views, wizardflow.StepView(c, step, st))
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}
			printSteps(cmd.OutOrStdout(), views)
			return nil
		},
	}

	cmd.Flags().StringVar(&flow, "flow", "brief", "Wizard flow (brief or preference)")
	cmd.Flags().StringToStringVarP(&discriminators, "discriminator", "d", nil, "Discriminator as kind=value (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func printSteps(w io.Writer, steps []dto.StepDTO) {
	for _, step := range steps {
		fmt.Fprintf(w, "Step %d/%d: %s\n", step.Index+1, len(steps), step.Title)
		for _, f := range step.Fields {
			var tags []string
			tags = append(tags, f.Kind)
			if f.Required {
				tags = append(tags, "required")
			}
			fmt.Fprintf(w, "  %-24s %s (%s)\n", f.ID, f.Label, strings.Join(tags, ", "))
			if len(f.Options) > 0 {
				fmt.Fprintf(w, "  %-24s options: %s\n", "", strings.Join(f.Options, ", "))
			}
		}
	}
}
