package cli

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var hours, minutes, seconds int

	cmd := &cobra.Command{
		Use:   "show [HH:MM:SS]",
		Short: "Render a clock",
		Long: `Render a clock in military and standard time.

The clock is read from an HH:MM:SS argument, or built from --hours, --minutes
and --seconds when no argument is given. Out-of-range values roll over,
negative components count as zero, and malformed text reads as 00:00:00.`,
		Example: `  clockctl show 15:07:32
  clockctl show --hours 50 --minutes 125 --seconds 125`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := ClockRequest{Hours: hours, Minutes: minutes, Seconds: seconds}
			if len(args) == 1 {
				req.Time = &args[0]
			}

			result, err := clocks.Show(cmd.Context(), req)
			if err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&hours, "hours", 0, "Hours component")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Minutes component")
	cmd.Flags().IntVar(&seconds, "seconds", 0, "Seconds component")

	return cmd
}

func newStepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "step HH:MM:SS STEP...",
		Short: "Step a clock forwards or backwards",
		Long: `Step a clock one unit at a time and render the result.

Each STEP is [+|-][count]unit where unit is s, m or h, for example +s, -15m
or 2h. Steps are applied in order. Put -- before the first step when it
starts with a minus sign so it is not read as a flag.`,
		Example: `  clockctl step 23:59:59 +s
  clockctl step 10:00:00 -- -30m +2h`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := clocks.Step(cmd.Context(), StepRequest{Time: args[0], Steps: args[1:]})
			if err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}
