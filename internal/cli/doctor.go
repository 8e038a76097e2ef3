package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check local prerequisites",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	backend, err := newBackend()
	if err != nil {
		return err
	}

	report := backend.Doctor()
	if !report.OK {
		return errors.New(report.Message)
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.Message)
	return nil
}
