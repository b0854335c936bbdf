package usecase

import (
	"fmt"
	"strings"

	"health-tracker/internal/classifier"
	"health-tracker/internal/health"
)

// RenderReport formats a summary as a Markdown chat message. Logs are
// expected newest first, as Summarize returns them.
func RenderReport(s health.StatusSummary) string {
	var sb strings.Builder
	sb.WriteString(MsgReportHeader)

	sb.WriteString("*Weekly Summary:*\n")
	fmt.Fprintf(&sb, "• Exercise sessions: %d sessions\n", s.ExerciseCount)
	fmt.Fprintf(&sb, "• Average duration: %d minutes\n", s.AverageDuration)
	fmt.Fprintf(&sb, "• Food logs: %d entries\n\n", s.FoodLogCount)

	sb.WriteString("*Recent Exercise Logs:*\n")
	if len(s.ExerciseLogs) == 0 {
		fmt.Fprintf(&sb, "No exercise logs in %s.\n", windowPhrase(s.Days))
	}
	for i, rec := range s.ExerciseLogs {
		if i == maxReportEntries {
			break
		}
		fmt.Fprintf(&sb, "• %s: %d mins of %s", rec.Date.Format(reportDateLayout), rec.Duration, exerciseLabel(rec.Type))
		if rec.Distance != "" {
			fmt.Fprintf(&sb, " (%s)", rec.Distance)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString("*Recent Food Logs:*\n")
	if len(s.FoodLogs) == 0 {
		fmt.Fprintf(&sb, "No food logs in %s.\n", windowPhrase(s.Days))
	}
	for i, rec := range s.FoodLogs {
		if i == maxReportEntries {
			break
		}
		fmt.Fprintf(&sb, "• %s: %s\n", rec.Date.Format(reportDateLayout), rec.FoodItems)
	}

	return sb.String()
}

func windowPhrase(days int) string {
	if days <= 0 || days == health.DefaultSummaryDays {
		return "the past week"
	}
	return fmt.Sprintf("the past %d days", days)
}

func renderExerciseConfirmation(cls classifier.Classification) string {
	var sb strings.Builder
	sb.WriteString(MsgExerciseLoggedHeader)
	if cls.DurationMinutes != nil && *cls.DurationMinutes > 0 {
		fmt.Fprintf(&sb, "Duration: %d minutes\n", *cls.DurationMinutes)
	}
	if cls.ExerciseType != "" {
		fmt.Fprintf(&sb, "Type: %s\n", cls.ExerciseType)
	}
	if cls.Distance != "" {
		fmt.Fprintf(&sb, "Distance: %s\n", cls.Distance)
	}
	sb.WriteString(MsgExerciseLoggedFooter)
	return sb.String()
}

func renderFoodConfirmation(cls classifier.Classification) string {
	var sb strings.Builder
	sb.WriteString(MsgFoodLoggedHeader)
	if cls.FoodItems != "" {
		fmt.Fprintf(&sb, "Food: %s\n", cls.FoodItems)
	}
	sb.WriteString(MsgFoodLoggedFooter)
	return sb.String()
}
