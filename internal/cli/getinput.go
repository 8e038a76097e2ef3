package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getInputDisplay string

var getInputCmd = &cobra.Command{
	Use:   "get-input",
	Short: "Print the current input source as a raw VCP 0x60 value",
	Args:  cobra.NoArgs,
	RunE:  runGetInput,
}

func init() {
	getInputCmd.Flags().StringVar(&getInputDisplay, "display", "", `Display selector: index, "uuid:<UUID>" or "name:<text>" (default from config)`)
}

func runGetInput(cmd *cobra.Command, args []string) error {
	s, err := openSession(getInputDisplay)
	if err != nil {
		return err
	}

	selector := s.resolved.DisplaySelector
	value, err := s.backend.GetInput(selector)
	if err != nil {
		return fmt.Errorf("failed to get input on display '%s': %w", selector, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
