package config

type Config struct {
	DatabaseURL   string
	JWTSecret     string
	SessionSecret string
	RedisURL      string
	StoreBackend  string // "postgres" or "memory"
	RateLimit     string // ulule/limiter format, e.g. "100-M"
	Environment   string
}
