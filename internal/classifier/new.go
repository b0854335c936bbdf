package classifier

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"

	"health-tracker/pkg/gemini"
	"health-tracker/pkg/log"
)

// Classifier turns a chat message into a Classification.
type Classifier interface {
	Classify(ctx context.Context, raw string) Classification
}

// Generator is the model endpoint used for classification.
type Generator interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

// Config tunes the model call. Zero values take the package defaults, except
// Temperature, which is passed through as given.
type Config struct {
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
	Timeout         time.Duration

	BreakerEnabled   bool
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

type implClassifier struct {
	l       log.Logger
	llm     Generator
	cfg     Config
	breaker *gobreaker.CircuitBreaker[string]
	now     func() time.Time
}

var _ Classifier = (*implClassifier)(nil)

// New builds a classifier. A nil llm makes every call use the keyword rules.
func New(l log.Logger, llm Generator, cfg Config) *implClassifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.TopP == 0 {
		cfg.TopP = DefaultTopP
	}
	if cfg.TopK == 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.MaxOutputTokens == 0 {
		cfg.MaxOutputTokens = DefaultMaxOutputTokens
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = DefaultFailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = DefaultOpenTimeout
	}

	c := &implClassifier{
		l:   l,
		llm: llm,
		cfg: cfg,
		now: time.Now,
	}
	if cfg.BreakerEnabled {
		c.breaker = c.newBreaker()
	}
	return c
}

func (c *implClassifier) newBreaker() *gobreaker.CircuitBreaker[string] {
	threshold := c.cfg.FailureThreshold
	return gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:    "gemini-classifier",
		Timeout: c.cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.l.Warnf(context.Background(), "%s: circuit breaker %s changed from %s to %s",
				LogPrefixClassify, name, from.String(), to.String())
		},
	})
}
