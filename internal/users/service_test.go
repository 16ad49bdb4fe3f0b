package users_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema-manager/internal/csvstore"
	"cinema-manager/internal/repository"
	"cinema-manager/internal/users"
)

func newService() *users.UserService {
	return users.NewUserService(repository.NewUserRepository(), csvstore.NewStore(), nil)
}

func TestAuthenticate(t *testing.T) {
	svc := newService()
	require.NoError(t, svc.Register("alice", "secret"))

	assert.True(t, svc.Authenticate("alice", "secret"))
	assert.False(t, svc.Authenticate("alice", "wrong"))
	assert.False(t, svc.Authenticate("bob", "secret"))
	// Exact match only, no normalization.
	assert.False(t, svc.Authenticate("Alice", "secret"))
	assert.False(t, svc.Authenticate("alice", "Secret"))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc := newService()

	require.NoError(t, svc.Register("alice", "secret"))
	err := svc.Register("alice", "other")
	assert.ErrorIs(t, err, repository.ErrUserExists)

	// The original credential survives.
	assert.True(t, svc.Authenticate("alice", "secret"))
}

func TestRegisterRejectsEmptyFields(t *testing.T) {
	svc := newService()

	assert.Error(t, svc.Register("", "secret"))
	assert.Error(t, svc.Register("alice", ""))
}

func TestImportExportUsers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.csv")
	require.NoError(t, os.WriteFile(path, []byte("alice,secret\nbob,hunter2\n"), 0644))

	svc := newService()
	require.NoError(t, svc.ImportUsers(path))
	assert.True(t, svc.Authenticate("alice", "secret"))
	assert.True(t, svc.Authenticate("bob", "hunter2"))

	require.NoError(t, svc.Register("carol", "pass3"))

	out := filepath.Join(dir, "users_out.csv")
	require.NoError(t, svc.ExportUsers(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "alice,secret\nbob,hunter2\ncarol,pass3\n", string(data))
}

func TestImportUsersDropsLaterDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	require.NoError(t, os.WriteFile(path, []byte("alice,first\nalice,second\n"), 0644))

	svc := newService()
	require.NoError(t, svc.ImportUsers(path))

	assert.True(t, svc.Authenticate("alice", "first"))
	assert.False(t, svc.Authenticate("alice", "second"))
}

func TestImportUsersMissingFile(t *testing.T) {
	svc := newService()

	assert.NoError(t, svc.ImportUsers(filepath.Join(t.TempDir(), "users.csv")))
}
