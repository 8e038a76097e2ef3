package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/monitorctl/monitorctl/internal/config"
)

var setInputDisplay string

var setInputCmd = &cobra.Command{
	Use:   "set-input <value|preset>",
	Short: "Switch the input source (raw VCP 0x60 value or preset name)",
	Example: `  monitorctl set-input 15
  monitorctl set-input usb_c --display 2`,
	Args: cobra.ExactArgs(1),
	RunE: runSetInput,
}

func init() {
	setInputCmd.Flags().StringVar(&setInputDisplay, "display", "", `Display selector: index, "uuid:<UUID>" or "name:<text>" (default from config)`)
}

func runSetInput(cmd *cobra.Command, args []string) error {
	s, err := openSession(setInputDisplay)
	if err != nil {
		return err
	}

	value, err := config.ParseInputValue(args[0], s.resolved)
	if err != nil {
		return err
	}

	selector := s.resolved.DisplaySelector
	if err := s.backend.SetInput(selector, value); err != nil {
		return fmt.Errorf("failed to set input to %d on display '%s': %w", value, selector, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
