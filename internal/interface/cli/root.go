package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/propbrief/internal/app/config"
	infraConfig "github.com/YoshitsuguKoike/propbrief/internal/infra/config"
	"github.com/YoshitsuguKoike/propbrief/internal/interface/cli/version"
)

var (
	// globalConfig holds the loaded configuration for all commands
	globalConfig config.Config

	// appFs is the file system every command reads and writes through
	appFs afero.Fs = afero.NewOsFs()
)

// defaultConfig is used when setting.json cannot be loaded
func defaultConfig() config.Config {
	return config.NewAppConfig(
		infraConfig.DefaultHome, "", 15, "outbox",
		"", "", ":8080", "warn",
		"default", "",
	)
}

func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "propbrief",
		Short:        "Property brief and preference submission wizard",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration before any command runs
			// Priority: setting.json > defaults
			cfg, err := infraConfig.LoadSettings(appFs, infraConfig.ResolveHome())
			if err != nil {
				// Continue with defaults if loading fails
				fmt.Fprintf(cmd.ErrOrStderr(), "WARN: %v (using defaults)\n", err)
				globalConfig = defaultConfig()
			} else {
				globalConfig = cfg
			}

			InitGlobalLogger(globalConfig.StderrLevel())
			GetLogger().SetOutput(cmd.ErrOrStderr())
			InitializeLoggers(GetLogger())
			Debug("config loaded from %s (%s)", globalConfig.ConfigSource(), globalConfig.Home())
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error { return c.Help() },
	}
	cmd.AddCommand(newFieldsCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newFillCmd())
	cmd.AddCommand(newDisclosureCmd())
	cmd.AddCommand(newRegionsCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(version.NewCommand())
	return cmd
}
