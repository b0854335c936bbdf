package classifier

import "time"

// Log prefixes
const (
	LogPrefixClassify      = "internal.classifier.Classify"
	LogPrefixClassifyModel = "internal.classifier.classifyWithModel"
)

// Confidence levels
const (
	ConfidenceStatus          = 85
	ConfidenceExercise        = 75
	ConfidenceFood            = 75
	ConfidenceUnknown         = 0
	ConfidenceModelDefault    = 90
	ConfidenceExplicitCommand = 99
)

// Defaults
const (
	DefaultTimeout          = 10 * time.Second
	DefaultTopP             = 0.8
	DefaultTopK             = 40
	DefaultMaxOutputTokens  = 500
	DefaultFailureThreshold = 5
	DefaultOpenTimeout      = 30 * time.Second

	DefaultExerciseType = "running"
)

// PromptClassify is filled with the raw message.
const PromptClassify = `You are a health tracking assistant that extracts information from user messages.

The message is: %q

Extract the following information if present:
1. Is this about exercise or food?
2. If exercise: What was the duration? What was the distance (if mentioned)? What type of exercise?
3. If food: What food items were consumed?
4. Is this a "status" request?

Return ONLY a JSON object with the following structure:
{
  "type": "exercise" OR "food" OR "status" OR "unknown",
  "duration_minutes": number (if exercise, can be estimated based on typical pace if only distance is given),
  "distance": text (if mentioned),
  "exercise_type": text (if mentioned, default to "running" for messages about running/jogging/ran),
  "food_items": text (if food),
  "is_status_request": true/false,
  "confidence": 0-100
}

Be generous in interpretation. If someone mentions running, classify it as exercise even if details are minimal.

EXAMPLES:
For "I ran 5 miles today" -> {"type": "exercise", "duration_minutes": 45, "distance": "5 miles", "exercise_type": "running", "food_items": "", "is_status_request": false, "confidence": 95}
For "I ran" -> {"type": "exercise", "duration_minutes": null, "distance": "", "exercise_type": "running", "food_items": "", "is_status_request": false, "confidence": 90}
For "I had oatmeal for breakfast" -> {"type": "food", "duration_minutes": null, "distance": "", "exercise_type": "", "food_items": "oatmeal", "is_status_request": false, "confidence": 95}
For "status" -> {"type": "status", "duration_minutes": null, "distance": "", "exercise_type": "", "food_items": "", "is_status_request": true, "confidence": 99}`
