package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSqliteInMemory(t *testing.T) {
	conn, err := OpenSqlite(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	var n int
	require.NoError(t, conn.QueryRow("SELECT 1").Scan(&n))
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, conn.Stats().MaxOpenConnections)
}

func TestOpenSqliteFileIsCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "islands.db")

	conn, err := OpenSqlite(path)
	require.NoError(t, err)
	require.NoError(t, conn.Close())
	assert.FileExists(t, path)
}

func TestOpenPostgresRejectsBadURL(t *testing.T) {
	_, err := Open("postgres://user@127.0.0.1:1/none?connect_timeout=1")
	assert.Error(t, err)
}
