package configlibsql

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profits.db")
	db, err := Struct{File: path}.OpenDB()
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("create table t (x integer)")
	require.NoError(t, err)
	_, err = db.Exec("insert into t values (1)")
	require.NoError(t, err)

	var x int
	require.NoError(t, db.QueryRow("select x from t").Scan(&x))
	require.Equal(t, 1, x)
}

func TestOpenDBRequiresTarget(t *testing.T) {
	require.False(t, Struct{}.Enabled())
	_, err := Struct{}.OpenDB()
	require.Error(t, err)
}
