package config

// Configer is the key/value view of citadel's configuration. Keys are the
// CITADEL_* environment variable names.
type Configer interface {
	Load() error
	GetKey(key string) string
	GetKeyWithDefault(key, defaultValue string) string
	GetIntKey(key string) int
	GetIntKeyWithDefault(key string, defaultValue int) int
}

const (
	KeyDotenvPath     = "CITADEL_DOTENV_PATH"
	KeyAPIURL         = "CITADEL_API_URL"
	KeyPort           = "CITADEL_PORT"
	KeyHTTPTimeout    = "CITADEL_HTTP_TIMEOUT"
	KeyPageSize       = "CITADEL_PAGE_SIZE"
	KeyMaxConcurrency = "CITADEL_MAX_CONCURRENCY"
	KeyLogLevel       = "CITADEL_LOG_LEVEL"
	KeyLogFile        = "CITADEL_LOG_FILE"
)
