package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sony/gobreaker/v2"

	"health-tracker/internal/observability"
	"health-tracker/pkg/gemini"
)

// Classify asks the model first and degrades to the keyword rules on any
// failure. It never returns an error.
func (c *implClassifier) Classify(ctx context.Context, raw string) Classification {
	start := c.now()

	if c.llm == nil {
		result := ClassifyFallback(raw)
		observability.RecordClassification(observability.SourceHeuristic, string(result.Type), c.now().Sub(start))
		return result
	}

	result, err := c.classifyWithModel(ctx, raw)
	if err != nil {
		stage := StageTransport
		var cerr *ClassificationError
		if errors.As(err, &cerr) {
			stage = cerr.Stage
		}
		c.l.Warnf(ctx, "%s: model classification failed, using keyword rules: %v", LogPrefixClassify, err)
		observability.RecordModelFailure(string(stage))

		result = ClassifyFallback(raw)
		observability.RecordClassification(observability.SourceHeuristic, string(result.Type), c.now().Sub(start))
		return result
	}

	c.l.Infof(ctx, "%s: classified as %s (confidence: %d%%)", LogPrefixClassify, result.Type, result.Confidence)
	observability.RecordClassification(observability.SourceModel, string(result.Type), c.now().Sub(start))
	return result
}

// classifyWithModel makes exactly one model call bounded by the configured timeout.
func (c *implClassifier) classifyWithModel(ctx context.Context, raw string) (Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req := gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Role:  gemini.RoleUser,
				Parts: []gemini.Part{{Text: fmt.Sprintf(PromptClassify, raw)}},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     c.cfg.Temperature,
			TopP:            c.cfg.TopP,
			TopK:            c.cfg.TopK,
			MaxOutputTokens: c.cfg.MaxOutputTokens,
		},
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return Classification{}, err
	}

	c.l.Debugf(ctx, "%s: raw model response: %s", LogPrefixClassifyModel, text)
	return parseModelResponse(text)
}

func (c *implClassifier) generate(ctx context.Context, req gemini.GenerateRequest) (string, error) {
	call := func() (string, error) {
		resp, err := c.llm.GenerateContent(ctx, req)
		if err != nil {
			return "", &ClassificationError{Stage: StageTransport, Err: err}
		}
		text, err := resp.Text()
		if err != nil {
			return "", &ClassificationError{Stage: StageEmpty, Err: err}
		}
		return text, nil
	}

	if c.breaker == nil {
		return call()
	}

	text, err := c.breaker.Execute(call)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", &ClassificationError{Stage: StageBreaker, Err: err}
	}
	return text, err
}

// modelPayload tolerates the loose typing models tend to produce.
type modelPayload struct {
	Type            *string `json:"type"`
	IsStatusRequest *bool   `json:"is_status_request"`
	ExerciseType    any     `json:"exercise_type"`
	DurationMinutes any     `json:"duration_minutes"`
	Distance        any     `json:"distance"`
	FoodItems       any     `json:"food_items"`
	Confidence      any     `json:"confidence"`
}

func parseModelResponse(text string) (Classification, error) {
	obj, err := sanitizeJSONResponse(text)
	if err != nil {
		return Classification{}, &ClassificationError{Stage: StageParse, Err: err}
	}

	var p modelPayload
	if err := json.Unmarshal([]byte(obj), &p); err != nil {
		return Classification{}, &ClassificationError{Stage: StageParse, Err: err}
	}

	if p.Type == nil {
		return Classification{}, &ClassificationError{Stage: StageSchema, Err: errors.New("missing type")}
	}
	t, ok := parseType(*p.Type)
	if !ok {
		return Classification{}, &ClassificationError{Stage: StageSchema, Err: fmt.Errorf("invalid type %q", *p.Type)}
	}

	result := Classification{
		Type:            t,
		ExerciseType:    stringValue(p.ExerciseType),
		DurationMinutes: intPointer(p.DurationMinutes),
		Distance:        stringValue(p.Distance),
		FoodItems:       stringValue(p.FoodItems),
		Confidence:      ConfidenceModelDefault,
	}
	if p.IsStatusRequest != nil {
		result.IsStatusRequest = *p.IsStatusRequest
	}
	if conf := intPointer(p.Confidence); conf != nil {
		result.Confidence = *conf
	}
	if result.Type == TypeExercise && result.ExerciseType == "" {
		result.ExerciseType = DefaultExerciseType
	}

	return result.Normalize(), nil
}

func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strings.TrimSpace(fmt.Sprintf("%g", val))
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := stringValue(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}

func intPointer(v any) *int {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case string:
		if _, err := fmt.Sscanf(strings.TrimSpace(val), "%g", &f); err != nil {
			return nil
		}
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n := int(math.Round(f))
	return &n
}
