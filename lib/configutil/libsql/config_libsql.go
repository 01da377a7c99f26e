package configlibsql

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Struct points at a database, either a local sqlite file or a remote libsql
// server (libsql://, http:// or https:// urls).
type Struct struct {
	File string `json:"file"`
	URL  string `json:"url"`
}

// FromTarget builds a Struct out of a single command line argument.
func FromTarget(target string) Struct {
	for _, scheme := range []string{"libsql://", "http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(target, scheme) {
			return Struct{URL: target}
		}
	}
	return Struct{File: target}
}

func wrapOpenDB(err error) error {
	return fmt.Errorf("open db: %w", err)
}

func (config Struct) OpenDB() (*sql.DB, error) {
	if config.URL != "" {
		db, err := sql.Open("libsql", config.URL)
		if err != nil {
			return nil, wrapOpenDB(err)
		}
		return db, nil
	}

	if config.File == "" {
		return nil, wrapOpenDB(fmt.Errorf("a path was not specified"))
	}
	if config.File != ":memory:" {
		err := os.MkdirAll(filepath.Dir(config.File), 0777)
		if err != nil {
			return nil, wrapOpenDB(err)
		}
	}

	db, err := sql.Open("sqlite", config.File)
	if err != nil {
		return nil, wrapOpenDB(err)
	}
	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		return nil, wrapOpenDB(err)
	}

	return db, nil
}
