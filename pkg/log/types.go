package log

// ZapConfig configures the zap backend.
type ZapConfig struct {
	Level        string // debug, info, warn, error, dpanic, panic, fatal
	Mode         string // "production" or anything else for development
	Encoding     string // "json" or "console"
	ColorEnabled bool
}

const (
	ModeProduction  = "production"
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

type ctxKey string

// TraceIDKey is the context key whose value, when present, is attached to every entry.
const TraceIDKey ctxKey = "trace_id"
