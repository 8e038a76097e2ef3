package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/monitorctl/monitorctl/internal/config"
)

var configPathCmd = &cobra.Command{
	Use:   "config-path",
	Short: "Print the config file location",
	Long: `Print the config file location. The first of these wins:
  $` + config.EnvConfigPath + `
  ./` + config.LocalFileName + `
  <user config dir>/` + config.AppDirName + `/` + config.ConfigFileName,
	Args: cobra.NoArgs,
	RunE: runConfigPath,
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := configStore().Path()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
