package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/Rshep3087/zenwallet/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration commands",
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Long: `Write a config file with the default settings. Without a path it is
written to zenwallet.toml in the user config directory. Existing files are
never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: configInitRun,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long:  `Print the configuration after merging flags, environment and config file.`,
		Args:  cobra.NoArgs,
		RunE:  a.configShowRun,
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to find user config directory: %w", err)
	}
	return filepath.Join(dir, "zenwallet", "zenwallet.toml"), nil
}

func configInitRun(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		p, err := defaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := config.Write(path, config.Default()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote config file %s\n", path)
	return nil
}

func (a *app) configShowRun(cmd *cobra.Command, _ []string) error {
	data, err := toml.Marshal(a.config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if used := a.v.ConfigFileUsed(); used != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", used)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))

	return nil
}
