package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/comunidad/feedquery/internal/config"
)

// ErrConfigExists is returned by config init when the target file exists
// and --force is not set.
var ErrConfigExists = errors.New("configuration file already exists, use --force to overwrite")

// NewConfigInitCmd creates the config init command, which writes a config
// file with default values.
func NewConfigInitCmd() *cobra.Command {
	var (
		force bool
		path  string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a configuration file with default values at ~/.feedquery/config.yaml
($FEEDQUERY_HOME/config.yaml when set), or at --path.`,
		Example: `  # Create global configuration
  feedquery config init

  # Create a configuration next to the data, overwriting an existing one
  feedquery config init --path ./feedquery.yaml --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = config.GlobalPath()
			}
			if path == "" {
				return errors.New("cannot determine home directory, use --path")
			}
			return initConfig(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().StringVar(&path, "path", "", "file to write (default: global config)")

	return cmd
}

// initConfig writes the default configuration to path.
func initConfig(cmd *cobra.Command, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return ErrConfigExists
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	if err := config.New().Save(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", path)
	return nil
}
