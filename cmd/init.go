package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// errConfigExists is returned by init when tgrep.yaml is already present.
var errConfigExists = errors.New("config file already exists")

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default tgrep.yaml configuration file",
		Long: `Create a tgrep.yaml in the current working directory holding the search
and logging settings tgrep would use right now, so it can be edited manually.
An existing tgrep.yaml is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := writeConfigFile(targetPath, loadSettings()); err != nil {
				return err
			}

			cmd.Printf("wrote %s\n", targetPath)

			return nil
		},
	}
}

func writeConfigFile(path string, cfg settings) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", errConfigExists, path)
	}

	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return file.Close()
}

func init() {
	rootCmd.AddCommand(initCmd)
}
