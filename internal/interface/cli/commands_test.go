package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoshitsuguKoike/propbrief/internal/application/dto"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/disclosure"
	infraConfig "github.com/YoshitsuguKoike/propbrief/internal/infra/config"
)

const testHome = "/home/propbrief"

// useMemFs points every command at an in-memory file system rooted at testHome
func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	orig := appFs
	appFs = fs
	t.Setenv(infraConfig.HomeEnv, testHome)
	t.Cleanup(func() {
		appFs = orig
		globalConfig = nil
	})
	return fs
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRoot()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestFieldsCommand(t *testing.T) {
	useMemFs(t)

	t.Run("text", func(t *testing.T) {
		out, _, err := execute(t, "fields", "-d", "transactionType=shortlet")
		require.NoError(t, err)
		assert.Contains(t, out, "Step 1/5")
		assert.Contains(t, out, "maxGuests")
		assert.NotContains(t, out, "landSize")
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := execute(t, "fields", "--json", "-d", "transactionType=sale", "-d", "propertyCategory=land")
		require.NoError(t, err)
		var steps []dto.StepDTO
		require.NoError(t, json.Unmarshal([]byte(out), &steps))
		require.Len(t, steps, 3)
		assert.Equal(t, "basic", steps[0].ID)

		var ids []string
		for _, f := range steps[0].Fields {
			ids = append(ids, f.ID)
		}
		assert.Contains(t, ids, "landSize")
		assert.NotContains(t, ids, "bedrooms")
	})

	t.Run("preference flow", func(t *testing.T) {
		out, _, err := execute(t, "fields", "--flow", "preference")
		require.NoError(t, err)
		assert.Contains(t, out, "prefState")
	})

	t.Run("unknown flow", func(t *testing.T) {
		_, _, err := execute(t, "fields", "--flow", "auction")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "use brief or preference")
	})
}

const saleScript = `flow: brief
matchedBriefId: brief-9
discriminators:
  transactionType: sale
  propertyCategory: land
  submitterRole: owner
events:
  - {type: set-field, field: state, value: Lagos}
  - {type: set-field, field: localGovernment, value: Ikeja}
  - {type: set-field, field: area, value: Alausa}
  - {type: set-field, field: price, value: "₦25,000,000"}
  - {type: set-field, field: landSize, value: 600}
  - {type: set-field, field: measurementType, value: sqm}
  - {type: next}
  - {type: set-field, field: documents, value: [C of O, Survey plan]}
  - {type: next}
  - {type: set-field, field: fullName, value: Ada Obi}
  - {type: set-field, field: email, value: ada@example.com}
  - {type: set-field, field: phoneNumber, value: "08012345678"}
  - {type: set-field, field: consentAccepted, value: true}
  - {type: next}
`

func TestRunCommand(t *testing.T) {
	t.Run("completes and prints the payload", func(t *testing.T) {
		fs := useMemFs(t)
		writeFile(t, fs, "/scripts/sale.yaml", saleScript)

		out, _, err := execute(t, "run", "--script", "/scripts/sale.yaml")
		require.NoError(t, err)

		var got struct {
			Wizard     dto.WizardDTO   `json:"wizard"`
			Payload    map[string]any  `json:"payload"`
			Submission json.RawMessage `json:"submission"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.True(t, got.Wizard.Ready)
		assert.Equal(t, "brief-9", got.Wizard.MatchedBriefID)
		assert.NotEmpty(t, got.Payload)
		assert.Empty(t, got.Submission)
	})

	t.Run("submit writes to the outbox", func(t *testing.T) {
		fs := useMemFs(t)
		writeFile(t, fs, "/scripts/sale.yaml", saleScript)

		out, _, err := execute(t, "run", "--script", "/scripts/sale.yaml", "--submit")
		require.NoError(t, err)

		var got struct {
			Wizard     dto.WizardDTO         `json:"wizard"`
			Submission *dto.SubmissionResult `json:"submission"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.NotNil(t, got.Submission)
		assert.True(t, strings.HasPrefix(got.Submission.Reference, "PB-"))
		assert.Contains(t, got.Submission.Disclosure, "Ada Obi")
		assert.False(t, got.Wizard.Ready, "a successful submission resets the wizard")

		exists, err := afero.Exists(fs, filepath.Join(testHome, "outbox", got.Submission.Reference+".json"))
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("stops at the first rejected event", func(t *testing.T) {
		fs := useMemFs(t)
		writeFile(t, fs, "/scripts/bad.yaml", `flow: brief
discriminators:
  transactionType: rent
events:
  - {type: set-field, field: price, value: "2,500,000"}
  - {type: next}
  - {type: set-field, field: fullName, value: never applied}
`)

		out, _, err := execute(t, "run", "--script", "/scripts/bad.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "event 2 (next)")

		var got struct {
			Wizard   dto.WizardDTO `json:"wizard"`
			Error    string        `json:"error"`
			FailedAt *int          `json:"failedAt"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.NotNil(t, got.FailedAt)
		assert.Equal(t, 2, *got.FailedAt)
		assert.NotEmpty(t, got.Error)
		assert.Equal(t, 0, got.Wizard.CurrentStep)
	})

	t.Run("script without flow", func(t *testing.T) {
		fs := useMemFs(t)
		writeFile(t, fs, "/scripts/empty.yaml", "events: []\n")

		_, _, err := execute(t, "run", "--script", "/scripts/empty.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "flow is required")
	})

	t.Run("missing script", func(t *testing.T) {
		useMemFs(t)
		_, _, err := execute(t, "run", "--script", "/scripts/nope.yaml")
		require.Error(t, err)
	})
}

func TestDisclosureCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		rates    string
		contains string
		wantErr  bool
	}{
		{
			name:     "owner sale",
			args:     []string{"--transaction", "sale", "--name", "  Ada   Obi "},
			contains: "I, Ada Obi, confirm that I own this property and agree to a commission of 10%",
		},
		{
			name:     "agent rent",
			args:     []string{"--transaction", "rent", "--role", "agent"},
			contains: disclosure.AgentRentText,
		},
		{
			name:     "blank name",
			args:     []string{"--transaction", "shortlet"},
			contains: "I, the submitter, confirm",
		},
		{
			name:     "rates from setting.json",
			args:     []string{"--transaction", "sale", "--role", "agent", "--name", "Tunde"},
			rates:    "rates:\n  sale: {owner: 12.5, agent: 40}\n",
			contains: "share 40% of the commission",
		},
		{
			name:    "unknown transaction",
			args:    []string{"--transaction", "auction"},
			wantErr: true,
		},
		{
			name:    "unknown role",
			args:    []string{"--transaction", "sale", "--role", "landlord"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := useMemFs(t)
			if tt.rates != "" {
				writeFile(t, fs, "/etc/rates.yaml", tt.rates)
				writeFile(t, fs, filepath.Join(testHome, infraConfig.SettingFile), `{"rates_path": "/etc/rates.yaml"}`)
			}

			out, _, err := execute(t, append([]string{"disclosure"}, tt.args...)...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestRegionsCommand(t *testing.T) {
	useMemFs(t)

	out, _, err := execute(t, "regions")
	require.NoError(t, err)
	assert.Contains(t, out, "Lagos\n")

	out, _, err = execute(t, "regions", "lagos")
	require.NoError(t, err)
	assert.Contains(t, out, "Ikeja\n")

	out, _, err = execute(t, "regions", "Lagos", "Ikeja")
	require.NoError(t, err)
	assert.Contains(t, out, "Alausa\n")

	_, _, err = execute(t, "regions", "Atlantis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown state")

	_, _, err = execute(t, "regions", "a", "b", "c")
	require.Error(t, err)
}

func TestInvalidSettingsFallBackToDefaults(t *testing.T) {
	fs := useMemFs(t)
	writeFile(t, fs, filepath.Join(testHome, infraConfig.SettingFile), "{not json")

	out, errOut, err := execute(t, "disclosure", "--transaction", "sale")
	require.NoError(t, err)
	assert.Contains(t, errOut, "using defaults")
	assert.Contains(t, out, "10%")
}
