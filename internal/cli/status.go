package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/monitorctl/monitorctl/internal/buildinfo"
	"github.com/monitorctl/monitorctl/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether monitortray is running",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsTrayRunning()
	if err != nil {
		return fmt.Errorf("failed to check tray status: %w", err)
	}

	out := cmd.OutOrStdout()
	if !running || info == nil {
		fmt.Fprintln(out, "monitortray is not running.")
		return nil
	}

	uptime := time.Since(info.StartedAt).Truncate(time.Second)

	fmt.Fprintln(out, styleSuccess.Render("monitortray is running."))
	fmt.Fprintf(out, "  %s %s\n", styleLabel.Render("Version:"), info.Version)
	fmt.Fprintf(out, "  %s     %d\n", styleLabel.Render("PID:"), info.PID)
	fmt.Fprintf(out, "  %s  %s\n", styleLabel.Render("Uptime:"), uptime)

	if buildinfo.OlderThanCurrent(info.Version) {
		fmt.Fprintln(out, styleWarning.Render(fmt.Sprintf(
			"monitortray %s is older than monitorctl %s; restart it to pick up changes.",
			info.Version, buildinfo.Version)))
	}
	return nil
}
