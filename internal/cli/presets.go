package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/monitorctl/monitorctl/internal/traymodel"
)

var presetsDisplay string

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Show the resolved input presets and target display",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func init() {
	presetsCmd.Flags().StringVar(&presetsDisplay, "display", "", "Resolve for this display selector instead of the config's")
}

func runPresets(cmd *cobra.Command, args []string) error {
	s, err := openSession(presetsDisplay)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", styleLabel.Render("Display:"), styleValue.Render(s.resolved.DisplaySelector))

	table := traymodel.BuildInputs(s.resolved.Inputs)
	if len(s.resolved.Inputs) == 0 {
		fmt.Fprintln(out, styleHint.Render("No presets configured, using the built-in defaults:"))
	}
	for _, e := range table.Entries() {
		fmt.Fprintf(out, "  %-12s %5d  %s\n",
			e.Name, e.Value,
			styleHint.Render(fmt.Sprintf("%s, menu id %d", traymodel.PrettyInputLabel(e.Name), e.ID)))
	}
	return nil
}
