package classifier

import (
	"regexp"
	"strings"
)

var (
	exerciseRe = regexp.MustCompile(`\b(run\w*|ran|jog\w*|exercis\w*|workout\w*|work out|mile\w*|gym\w*|training|walk\w*|ride|rides|riding|rode|cycl\w*|bik\w*|pilates|danc\w*|zumba|boxing|kickboxing|martial|karate|taekwondo|crossfit|hiit|circuit\w*|sport\w*|yoga|hik\w*|swim\w*|swam|lift\w*)\b`)

	foodRe    = regexp.MustCompile(`\b(ate|eat\w*|food\w*|\w*meals?|breakfast|brunch|lunch\w*|dinner\w*|supper|snack\w*|salad\w*|fruit\w*|vegetable\w*|veggie\w*|protein|shake\w*|smoothie\w*)\b`)
	hadMealRe = regexp.MustCompile(`\bhad\b.*\bfor (breakfast|brunch|lunch|dinner|supper|a snack|snack)\b`)

	// A shake, or exercise mentioned only as the time of a meal, makes food
	// the dominant reading.
	shakeRe  = regexp.MustCompile(`\bshakes?\b`)
	timingRe = regexp.MustCompile(`\b(before|after)\b`)

	leadingFoodRe  = regexp.MustCompile(`(?i)^\s*(i\s+)?(just\s+)?(had|ate|eat|consumed|drank)\b\s*`)
	trailingMealRe = regexp.MustCompile(`(?i)\s*\bfor\s+(breakfast|brunch|lunch|dinner|supper|a snack|snack)\b[\s.!]*$`)
	beforeAfterRe  = regexp.MustCompile(`(?i)\s*\b(before|after)\b(.*)$`)
)

type exerciseLabel struct {
	re    *regexp.Regexp
	label string
}

// Checked in order; the first hit names the activity.
var exerciseLabels = []exerciseLabel{
	{regexp.MustCompile(`\bwalk`), "walking"},
	{regexp.MustCompile(`\b(swim|swam)`), "swimming"},
	{regexp.MustCompile(`\b(bik|ride|riding|rode|cycl)`), "cycling"},
	{regexp.MustCompile(`\b(gym|lift|weight)`), "strength training"},
	{regexp.MustCompile(`\byoga`), "yoga"},
	{regexp.MustCompile(`\bpilates`), "pilates"},
	{regexp.MustCompile(`\bdanc`), "dance"},
	{regexp.MustCompile(`\bzumba`), "zumba"},
	{regexp.MustCompile(`\b(kick)?boxing`), "boxing"},
	{regexp.MustCompile(`\b(martial|karate|taekwondo)`), "martial arts"},
	{regexp.MustCompile(`\bcrossfit`), "crossfit"},
	{regexp.MustCompile(`\b(hiit|circuit)`), "hiit"},
	{regexp.MustCompile(`\bhik`), "hiking"},
}

type rule struct {
	name  string
	match func(text string) bool
	build func(raw, text string) Classification
}

// rules are evaluated top to bottom; the first match wins.
var rules = []rule{
	{name: "status", match: isStatusRequest, build: buildStatus},
	{name: "exercise", match: func(text string) bool {
		return exerciseRe.MatchString(text) && !foodDominates(text)
	}, build: buildExercise},
	{name: "food", match: hasFood, build: buildFood},
}

// ClassifyFallback classifies raw with keyword rules only. It is deterministic
// and always marks the result as a fallback.
func ClassifyFallback(raw string) Classification {
	text := strings.ToLower(strings.TrimSpace(raw))
	for _, r := range rules {
		if r.match(text) {
			c := r.build(raw, text)
			c.Fallback = true
			return c.Normalize()
		}
	}
	return Classification{
		Type:       TypeUnknown,
		Confidence: ConfidenceUnknown,
		Fallback:   true,
	}
}

func isStatusRequest(text string) bool {
	return strings.Contains(text, "status") || strings.Contains(text, "report")
}

func hasFood(text string) bool {
	return foodRe.MatchString(text) || hadMealRe.MatchString(text)
}

// foodDominates reports a food-overriding cue. before/after counts only when
// every exercise word follows it, as in "a banana before my run"; "walked
// after dinner" stays exercise.
func foodDominates(text string) bool {
	if !hasFood(text) {
		return false
	}
	if shakeRe.MatchString(text) {
		return true
	}
	loc := timingRe.FindStringIndex(text)
	if loc == nil {
		return false
	}
	return exerciseRe.MatchString(text[loc[1]:]) && !exerciseRe.MatchString(text[:loc[0]])
}

func labelExercise(text string) string {
	for _, l := range exerciseLabels {
		if l.re.MatchString(text) {
			return l.label
		}
	}
	return DefaultExerciseType
}

func buildStatus(_, _ string) Classification {
	return Classification{
		Type:            TypeStatus,
		IsStatusRequest: true,
		Confidence:      ConfidenceStatus,
	}
}

func buildExercise(raw, text string) Classification {
	fields := Extract(raw)
	exerciseType := labelExercise(text)
	duration := fields.DurationMinutes
	if duration == nil && fields.Distance != "" {
		duration = EstimateDuration(fields.Distance, exerciseType)
	}
	return Classification{
		Type:            TypeExercise,
		ExerciseType:    exerciseType,
		DurationMinutes: duration,
		Distance:        fields.Distance,
		Confidence:      ConfidenceExercise,
	}
}

func buildFood(raw, _ string) Classification {
	return Classification{
		Type:       TypeFood,
		FoodItems:  foodItems(raw),
		Confidence: ConfidenceFood,
	}
}

// foodItems strips "I had"-style openers and trailing meal-time or
// before/after-exercise phrases. It falls back to the trimmed message.
func foodItems(raw string) string {
	items := strings.TrimSpace(raw)
	items = leadingFoodRe.ReplaceAllString(items, "")

	for {
		prev := items
		items = trailingMealRe.ReplaceAllString(items, "")
		if m := beforeAfterRe.FindStringSubmatchIndex(items); m != nil {
			rest := strings.ToLower(items[m[4]:m[5]])
			if exerciseRe.MatchString(rest) {
				items = items[:m[0]]
			}
		}
		items = strings.TrimRight(strings.TrimSpace(items), ".!,")
		if items == prev {
			break
		}
	}

	if items == "" {
		return strings.TrimSpace(raw)
	}
	return items
}
