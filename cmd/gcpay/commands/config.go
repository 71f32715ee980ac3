package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configDirPerm  = 0o700
	configFilePerm = 0o600
)

// fileConfig is the on-disk shape of ~/.gcpay/config.yml.
type fileConfig struct {
	Token       string `yaml:"token,omitempty"`
	Environment string `yaml:"environment,omitempty"`
	Endpoint    string `yaml:"endpoint,omitempty"`
	Output      string `yaml:"output,omitempty"`
}

// settableKeys are the configuration keys accepted by set/unset.
var settableKeys = map[string]bool{
	"token":       true,
	"environment": true,
	"endpoint":    true,
	"output":      true,
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the gcpay CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Show the effective configuration, with the token masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := currentConfig()

			masked := config
			if masked.Token != "" {
				masked.Token = "***"
			}

			return renderOutput(masked, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")
				_ = table.Append("token", orNA(masked.Token))
				_ = table.Append("environment", orNA(masked.Environment))
				_ = table.Append("endpoint", orNA(masked.Endpoint))
				_ = table.Append("output", orNA(masked.Output))
				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and persist it to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			if !settableKeys[key] {
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
			}

			viper.Set(key, value)

			err := saveConfig()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Long:  "Remove a configuration value and persist the change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			if !settableKeys[key] {
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
			}

			viper.Set(key, "")

			err := saveConfig()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Unset %s\n", key)

			return nil
		},
	}
}

// currentConfig snapshots the effective configuration from viper.
func currentConfig() fileConfig {
	return fileConfig{
		Token:       viper.GetString("token"),
		Environment: viper.GetString("environment"),
		Endpoint:    viper.GetString("endpoint"),
		Output:      viper.GetString("output"),
	}
}

// saveConfig writes the effective configuration to the config file.
func saveConfig() error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".gcpay")

		err = os.MkdirAll(configDir, configDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(currentConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, configFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
