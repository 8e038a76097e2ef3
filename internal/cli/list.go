package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listRaw bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List detected external displays",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().BoolVar(&listRaw, "raw", false, "Also print the raw backend output")
}

func runList(cmd *cobra.Command, args []string) error {
	backend, err := newBackend()
	if err != nil {
		return err
	}

	report, err := backend.ListDisplays()
	if err != nil {
		return fmt.Errorf("failed to list displays: %w", err)
	}

	out := cmd.OutOrStdout()
	if listRaw && report.Raw != "" {
		fmt.Fprintln(out, report.Raw)
	}
	for _, d := range report.Displays {
		fmt.Fprintln(out, d.String())
	}
	if len(report.Displays) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), styleHint.Render("No external displays detected."))
	}
	return nil
}
