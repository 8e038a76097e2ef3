package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/monitorctl/monitorctl/internal/platform"
	"github.com/monitorctl/monitorctl/internal/traymodel"
	"github.com/monitorctl/monitorctl/internal/tui"
)

var pickDisplay string

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose an input preset interactively",
	Args:  cobra.NoArgs,
	RunE:  runPick,
}

func init() {
	pickCmd.Flags().StringVar(&pickDisplay, "display", "", "Display selector (default from config)")
}

func runPick(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("pick needs an interactive terminal; use 'monitorctl set-input' instead")
	}

	s, err := openSession(pickDisplay)
	if err != nil {
		return err
	}
	selector := s.resolved.DisplaySelector

	// Reading the current input is best-effort; m1ddc cannot.
	var current *uint16
	if v, err := s.backend.GetInput(selector); err == nil {
		current = &v
	} else if !errors.Is(err, platform.ErrUnsupported) {
		fmt.Fprintln(cmd.ErrOrStderr(), styleWarning.Render("Could not read current input: ")+err.Error())
	}

	entries := traymodel.BuildInputs(s.resolved.Inputs).Entries()
	entry, ok, err := tui.RunPicker(fmt.Sprintf("Input for display %s", selector), entries, current)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := s.backend.SetInput(selector, entry.Value); err != nil {
		return fmt.Errorf("failed to set input to %d on display '%s': %w", entry.Value, selector, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d)\n",
		styleSuccess.Render("✓"), traymodel.PrettyInputLabel(entry.Name), entry.Value)
	return nil
}
