package testutil

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"

	configlibsql "amazonorders/lib/configutil/libsql"
	"amazonorders/lib/telemetry"
)

type DBParams struct {
	Name string
	// if unspecified, the db is left empty
	Schema string
	// if unspecified, it will use `:memory:`
	Path string
}

// SetupDB sets up telemetry for the test and opens a sqlite db with the
// schema applied.
func SetupDB(t testing.TB, params DBParams) (*sql.DB, func()) {
	cleanupTelemetry := telemetry.SetupForTesting(t, fmt.Sprintf("test:%s", params.Name))

	path := params.Path
	if path == "" {
		path = ":memory:"
	}
	db, err := configlibsql.Struct{File: path}.OpenDB()
	if err != nil {
		t.Fatal(err)
	}
	if params.Schema != "" {
		_, err = db.Exec(params.Schema)
		if err != nil && !strings.Contains(err.Error(), "already exists") {
			t.Fatal(err)
		}
	}

	return db, func() {
		db.Close()
		cleanupTelemetry()
	}
}
