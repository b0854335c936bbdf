package model

// Scope identifies who a request is acting on behalf of.
type Scope struct {
	UserID   string
	Username string
	ChatID   int64 // Telegram chat, 0 for other channels
}
