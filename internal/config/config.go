package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Harshitk-cp/wolfmind/internal/strategy"
	"github.com/joho/godotenv"
)

// Load reads the .env file named by WOLFMIND_ENV (or .env by default), then
// the matching .secret file if it exists. Values already in the environment win.
func Load() error {
	envFile := os.Getenv("WOLFMIND_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	return intEnv("SERVER_PORT", 8080)
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

// LogLevel returns the log level (debug, info, warn, error).
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// RateLimitRPS returns requests per second allowed per client IP.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

func RateLimitBurst() int {
	return intEnv("RATE_LIMIT_BURST", 20)
}

// APIToken is the bearer token required by /v1. Empty disables auth.
func APIToken() string {
	return os.Getenv("API_TOKEN")
}

// GameIdleTTL is how long a game may go without a callback before it is reaped.
func GameIdleTTL() time.Duration {
	return durationEnv("GAME_IDLE_TTL", 30*time.Minute)
}

func GameReapInterval() time.Duration {
	return durationEnv("GAME_REAP_INTERVAL", time.Minute)
}

func SeerComingoutDay() int {
	return intEnv("SEER_COMINGOUT_DAY", 3)
}

func MediumComingoutDay() int {
	return intEnv("MEDIUM_COMINGOUT_DAY", 3)
}

func PossessedComingoutDay() int {
	return intEnv("POSSESSED_COMINGOUT_DAY", 1)
}

// PossessedPersona returns seer, medium or random. Unknown values fall back to seer.
func PossessedPersona() strategy.Persona {
	return personaEnv("POSSESSED_PERSONA", strategy.PersonaSeer)
}

// FakeWerewolfProbability is the chance a fabricated judgement says werewolf.
func FakeWerewolfProbability() float64 {
	return probabilityEnv("FAKE_WEREWOLF_PROBABILITY", 0.5)
}

// StrategyFile is an optional YAML preset applied beneath the env overrides.
func StrategyFile() string {
	return os.Getenv("STRATEGY_FILE")
}

func intEnv(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 {
		return def
	}
	return v
}

func personaEnv(key string, def strategy.Persona) strategy.Persona {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	switch p := strategy.Persona(strings.ToLower(raw)); p {
	case strategy.PersonaSeer, strategy.PersonaMedium, strategy.PersonaRandom:
		return p
	default:
		return def
	}
}

func probabilityEnv(key string, def float64) float64 {
	p, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || p < 0 || p > 1 {
		return def
	}
	return p
}

func durationEnv(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
