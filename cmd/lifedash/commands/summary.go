package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Kxvin1/life-dashboard/internal/app"
)

func (c *CLI) newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the dashboard summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			follow, _ := cmd.Flags().GetBool("follow")
			if follow {
				interval, _ := cmd.Flags().GetDuration("interval")
				return c.app.FollowSummary(cmd.Context(), cmd.OutOrStdout(), interval)
			}

			entries, err := c.app.SummaryEntries(cmd.Context())
			if err != nil {
				return err
			}
			return app.RenderSummary(cmd.OutOrStdout(), entries)
		},
	}
	cmd.Flags().BoolP("follow", "f", false, "Keep running and re-render when data changes")
	cmd.Flags().Duration("interval", 30*time.Second, "Poll interval in follow mode")
	return cmd
}
