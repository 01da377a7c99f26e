package configlibsql

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromTarget(t *testing.T) {
	require.Equal(t, Struct{URL: "libsql://orders.turso.io"}, FromTarget("libsql://orders.turso.io"))
	require.Equal(t, Struct{File: "orders.db"}, FromTarget("orders.db"))
}

func TestOpenFile(t *testing.T) {
	db, err := Struct{File: filepath.Join(t.TempDir(), "nested", "orders.db")}.OpenDB()
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Ping())

	_, err = Struct{}.OpenDB()
	require.Error(t, err)
}
