package repository_test

import (
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/mnemosyne/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase_CreatesFile(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "employees.db")

	dtb, err := repository.NewDatabase(path)
	require.NoError(t, err)
	defer dtb.Close()

	assert.FileExists(t, path)
}

func TestNewDatabase_UnreachablePath(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "no", "such", "dir", "employees.db")

	dtb, err := repository.NewDatabase(path)
	require.Error(t, err)
	assert.Nil(t, dtb)
}
