package gen

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultOutput is the file written next to the scanned sources.
const DefaultOutput = "zz_berth_gen.go"

// Config controls one berthgen run.
type Config struct {
	// Dir is the package directory to scan.
	Dir string

	// Output is the generated file name, relative to Dir.
	Output string

	// Plan prints a YAML plan instead of writing Output.
	Plan bool

	// LogLevel is a zap level name.
	LogLevel string
}

// Load reads .env (if present) and populates a Config from BERTH_* variables.
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// .env is optional
	_ = godotenv.Load(files...)

	return &Config{
		Dir:      env("BERTH_DIR", "."),
		Output:   env("BERTH_OUTPUT", DefaultOutput),
		Plan:     envBool("BERTH_PLAN", false),
		LogLevel: env("BERTH_LOG_LEVEL", "info"),
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
