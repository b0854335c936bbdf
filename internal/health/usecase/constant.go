package usecase

// Log prefixes
const (
	LogPrefixHandleMessage = "internal.health.usecase.HandleMessage"
	LogPrefixRoute         = "internal.health.usecase.route"
	LogPrefixSummarize     = "internal.health.usecase.Summarize"
	LogPrefixListLogs      = "internal.health.usecase.ListLogs"
)

// statusCommand skips classification entirely.
const statusCommand = "status"

const maxReportEntries = 5

// User-facing replies
const (
	MsgUnknown = "I'm not sure what you meant. Please send a message about your exercise, food, or type 'status' for a report."

	MsgExerciseFailed = "Sorry, I couldn't log your exercise. Please try again later."
	MsgFoodFailed     = "Sorry, I couldn't log your food. Please try again later."
	MsgStatusFailed   = "Sorry, I couldn't retrieve your status right now. Please try again later."

	MsgExerciseLoggedHeader = "✅ *Exercise Logged!* ✅\n\n"
	MsgExerciseLoggedFooter = "\nKeep up the good work! 💪"
	MsgFoodLoggedHeader     = "✅ *Food Logged!* ✅\n\n"
	MsgFoodLoggedFooter     = "\nThanks for logging your meal! 🍎"

	MsgReportHeader = "📊 *Your Weekly Health Report* 📊\n\n"
)

// Metric outcomes
const (
	outcomeOK     = "ok"
	outcomeFailed = "failed"
)

// reportDateLayout matches a US locale short date.
const reportDateLayout = "1/2/2006"
