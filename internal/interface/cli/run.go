package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/YoshitsuguKoike/propbrief/internal/application/dto"
	"github.com/YoshitsuguKoike/propbrief/internal/application/usecase/wizardflow"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/payload"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/wizard"
)

// eventScript is the YAML layout accepted by `propbrief run`
type eventScript struct {
	Flow           string            `yaml:"flow"`
	MatchedBriefID string            `yaml:"matchedBriefId,omitempty"`
	Discriminators map[string]string `yaml:"discriminators,omitempty"`
	Events         []dto.EventInput  `yaml:"events"`
}

// runResult is printed as JSON when the script finishes
type runResult struct {
	Wizard     dto.WizardDTO         `json:"wizard"`
	Payload    payload.Payload       `json:"payload,omitempty"`
	Submission *dto.SubmissionResult `json:"submission,omitempty"`
	Error      string                `json:"error,omitempty"`
	FailedAt   *int                  `json:"failedAt,omitempty"`
}

func newRunCmd() *cobra.Command {
	var (
		scriptPath string
		submit     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay a YAML event script through the wizard",
		Long: `Replay a YAML event script through the wizard and print the resulting
state as JSON. When the wizard completes, the final payload is included.
With --submit, a completed wizard is also handed to the configured submitter.`,
		Example: `  propbrief run --script brief.yaml
  propbrief run --script brief.yaml --submit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			script, err := loadScript(env.fs, scriptPath)
			if err != nil {
				return err
			}
			return runScript(cmd.Context(), env, script, submit, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&scriptPath, "script", "", "Path to the YAML event script")
	cmd.Flags().BoolVar(&submit, "submit", false, "Submit the wizard once it completes")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}

func loadScript(fs afero.Fs, path string) (*eventScript, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	var script eventScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	if script.Flow == "" {
		return nil, fmt.Errorf("script %s: flow is required", path)
	}
	return &script, nil
}

// runScript applies the events in order and stops at the first rejected one.
// The result is always printed; a rejection is also returned as the error.
func runScript(ctx context.Context, env *environment, script *eventScript, submit bool, out io.Writer) error {
	c, err := env.catalog(script.Flow)
	if err != nil {
		return err
	}
	seed, err := wizardflow.DecodeEvent(c, dto.EventInput{
		Type:           wizardflow.EventSeed,
		MatchedBriefID: script.MatchedBriefID,
		Discriminators: script.Discriminators,
	})
	if err != nil {
		return err
	}
	sess := wizard.NewSession(c, seed.(wizard.Seed))

	var result runResult
	runErr := func() error {
		for i, in := range script.Events {
			ev, err := wizardflow.DecodeEvent(c, in)
			if err == nil {
				err = sess.Apply(ev)
			}
			if err != nil {
				n := i + 1
				result.FailedAt = &n
				return fmt.Errorf("event %d (%s): %w", n, in.Type, err)
			}
			Debug("event %d applied: %s", i+1, ev.Name())
		}
		if !sess.State().Ready {
			return nil
		}

		p, err := sess.FinalPayload()
		if err != nil {
			return err
		}
		result.Payload = p
		if !submit {
			return nil
		}
		res, err := env.submitUseCase().Execute(ctx, sess)
		if err != nil {
			return err
		}
		result.Submission = res
		return nil
	}()

	result.Wizard = wizardflow.Snapshot("", sess)
	if runErr != nil {
		result.Error = runErr.Error()
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return err
	}
	return runErr
}
