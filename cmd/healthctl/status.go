package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"health-tracker/internal/health"
	"health-tracker/internal/health/usecase"
)

func newStatusCmd(a *app) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the activity report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.useCase(cmd.Context())
			if err != nil {
				return err
			}
			summary, err := uc.Summarize(cmd.Context(), a.scope(), days)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), usecase.RenderReport(summary))
			return nil
		},
	}
	cmd.Flags().IntVarP(&days, "days", "d", health.DefaultSummaryDays, "window length in days")
	return cmd
}

func newLogsCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "List stored exercise and food logs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.useCase(cmd.Context())
			if err != nil {
				return err
			}
			out, err := uc.ListLogs(cmd.Context(), a.scope(), health.ListLogsInput{Limit: limit})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tKIND\tDETAIL")
			for _, e := range out.Logs {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Date.Format("2006-01-02 15:04"), e.Kind, logDetail(e))
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of entries")
	return cmd
}

func logDetail(e health.LogEntry) string {
	if e.Kind == health.LogKindFood {
		return e.FoodItems
	}
	detail := fmt.Sprintf("%d min %s", e.Duration, e.ExerciseType)
	if e.Distance != "" {
		detail += " (" + e.Distance + ")"
	}
	return detail
}
