package config_test

import (
	"testing"

	"github.com/UnknownOlympus/mnemosyne/internal/config"

	"github.com/stretchr/testify/assert"
)

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("MNEMOSYNE_ENV", "local")
	t.Setenv("MNEMOSYNE_DB_PATH", "testdb.db")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "testdb.db", cfg.DBPath)
}

func TestMustLoad_Defaults(t *testing.T) {
	t.Setenv("MNEMOSYNE_ENV", "")
	t.Setenv("MNEMOSYNE_DB_PATH", "employees.db")

	cfg := config.MustLoad()

	assert.Equal(t, "employees.db", cfg.DBPath)
}

func TestMustLoad_EmptyPathError(t *testing.T) {
	t.Setenv("MNEMOSYNE_DB_PATH", "")

	assert.PanicsWithValue(t, "database path is empty", func() {
		config.MustLoad()
	})
}
