// Package config reads the service settings from the environment, after
// loading an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/luca-patrignani/bluff-analysis/store"
)

type Config struct {
	Addr     string
	LogLevel string
	Store    store.Options
	// SurveyBoards is the default number of flops per survey.
	SurveyBoards int
	// SurveySeed makes surveys reproducible when set.
	SurveySeed string
}

// Load reads .env files (missing files are ignored) and then the
// environment. Variables already set in the environment win over .env.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	c := Config{
		Addr:       getenv("BLUFF_ADDR", ":8080"),
		LogLevel:   strings.ToLower(getenv("BLUFF_LOG_LEVEL", "info")),
		SurveySeed: os.Getenv("BLUFF_SURVEY_SEED"),
		Store: store.Options{
			Driver: store.NormalizeDriver(getenv("BLUFF_STORE", store.DriverMemory)),
		},
	}
	switch c.Store.Driver {
	case store.DriverSQLite:
		c.Store.DSN = getenv("BLUFF_SQLITE_PATH", "bluff.db")
	case store.DriverPostgres:
		c.Store.DSN = os.Getenv("DATABASE_URL")
		if c.Store.DSN == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required for the postgres store")
		}
	}

	boards, err := strconv.Atoi(getenv("BLUFF_SURVEY_BOARDS", "200"))
	if err != nil || boards <= 0 {
		return Config{}, fmt.Errorf("BLUFF_SURVEY_BOARDS must be a positive integer")
	}
	c.SurveyBoards = boards

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid BLUFF_LOG_LEVEL %q", c.LogLevel)
	}
	return c, nil
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
