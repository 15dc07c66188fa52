// Package config loads service configuration and recruitment policy from
// environment variables.
package config

import (
	"os"
	"strconv"
	"strings"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

// Policy carries the knobs that historically differed between recruitment
// rounds. They are configuration, not business logic: whoever owns the live
// round decides.
type Policy struct {
	// StudentIDExactLength requires the student id to be exactly this many
	// digits. Zero accepts any length.
	StudentIDExactLength int
	// RequireEnrollment rejects applicants who answer that they are not
	// currently enrolled.
	RequireEnrollment bool
	// RequireAttachment switches the round to the file-based variant: the
	// uploaded document is the submission artifact and the essay fields are
	// not collected.
	RequireAttachment bool
	// MotivationMinChars is the minimum motivation length, counted in runes.
	MotivationMinChars int
	// MaxUploadBytes is the attachment size ceiling. A file of exactly this
	// size is accepted.
	MaxUploadBytes int64
}

// Config is everything the server needs besides database credentials,
// which internal/database reads on its own.
type Config struct {
	Port         int
	AllowOrigins []string

	StorageBucket string

	ResendAPIKey string
	SenderEmail  string
	AdminEmails  []string

	RateLimitPerSecond uint

	Policy Policy
}

// Load reads the full configuration from the environment. Missing optional
// values fall back to the defaults of the current recruitment round.
func Load() *Config {
	return &Config{
		Port:          getInt("PORT", 8080),
		AllowOrigins:  splitList(os.Getenv("ALLOW_ORIGIN")),
		StorageBucket: os.Getenv("CLOUD_STORAGE_BUCKET"),
		ResendAPIKey:  os.Getenv("RESEND_API_KEY"),
		SenderEmail:   getEnv("CLUB_EMAIL", "onboarding@resend.dev"),
		AdminEmails:   splitList(os.Getenv("ADMIN_EMAILS")),

		RateLimitPerSecond: uint(getInt("RATE_LIMIT_REQUESTS_PER_SECOND", 5)),

		Policy: Policy{
			StudentIDExactLength: getInt("STUDENT_ID_EXACT_LENGTH", 0),
			RequireEnrollment:    getBool("REQUIRE_ENROLLMENT", true),
			RequireAttachment:    getBool("REQUIRE_ATTACHMENT", false),
			MotivationMinChars:   getInt("MOTIVATION_MIN_CHARS", 500),
			MaxUploadBytes:       getInt64("MAX_UPLOAD_BYTES", 10<<20),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func getInt64(key string, fallback int64) int64 {
	value, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return fallback
	}
	return value
}

func getBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
