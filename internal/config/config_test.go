package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/luca-patrignani/bluff-analysis/store"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"BLUFF_ADDR", "BLUFF_LOG_LEVEL", "BLUFF_STORE", "BLUFF_SQLITE_PATH", "DATABASE_URL", "BLUFF_SURVEY_BOARDS", "BLUFF_SURVEY_SEED"} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	c, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if c.Addr != ":8080" || c.LogLevel != "info" || c.SurveyBoards != 200 {
		t.Fatalf("unexpected defaults %+v", c)
	}
	if c.Store.Driver != store.DriverMemory {
		t.Fatalf("expected memory store, got %s", c.Store.Driver)
	}
}

func TestSQLiteStore(t *testing.T) {
	clearEnv(t)
	t.Setenv("BLUFF_STORE", "sqlite")
	t.Setenv("BLUFF_SQLITE_PATH", "/tmp/x.db")
	c, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if c.Store.DSN != "/tmp/x.db" {
		t.Fatalf("expected sqlite path, got %q", c.Store.DSN)
	}
}

func TestPostgresNeedsDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("BLUFF_STORE", "postgres")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}
	t.Setenv("DATABASE_URL", "postgres://localhost/bluff")
	c, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if c.Store.DSN != "postgres://localhost/bluff" {
		t.Fatalf("unexpected dsn %q", c.Store.DSN)
	}
}

func TestStoreDriverAliases(t *testing.T) {
	cases := map[string]string{
		"pg":         store.DriverPostgres,
		"PostgreSQL": store.DriverPostgres,
		"sqlite3":    store.DriverSQLite,
		"mem":        store.DriverMemory,
	}
	for alias, want := range cases {
		clearEnv(t)
		t.Setenv("BLUFF_STORE", alias)
		t.Setenv("DATABASE_URL", "postgres://localhost/bluff")
		c, err := FromEnv()
		if err != nil {
			t.Fatalf("%s: %v", alias, err)
		}
		if c.Store.Driver != want {
			t.Fatalf("%s: expected driver %s, got %s", alias, want, c.Store.Driver)
		}
		if want == store.DriverPostgres && c.Store.DSN != "postgres://localhost/bluff" {
			t.Fatalf("%s: DATABASE_URL was not read", alias)
		}
		if want == store.DriverSQLite && c.Store.DSN != "bluff.db" {
			t.Fatalf("%s: expected the default sqlite path, got %q", alias, c.Store.DSN)
		}
	}
}

func TestInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("BLUFF_SURVEY_BOARDS", "many")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for non numeric boards")
	}
	clearEnv(t)
	t.Setenv("BLUFF_LOG_LEVEL", "loud")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("BLUFF_SURVEY_SEED")
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("BLUFF_SURVEY_SEED=fromfile\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.SurveySeed != "fromfile" {
		t.Fatalf("expected seed from .env, got %q", c.SurveySeed)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
}
