package common

type contextKey string

const (
	ApiKeyContextKey  contextKey = "api_key"
	UserIDContextKey  contextKey = "user_id"
	LatencyContextKey contextKey = "__execution_time"
)
