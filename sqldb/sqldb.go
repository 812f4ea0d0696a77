// Package sqldb implements the storage interfaces of package core on database/sql.
package sqldb

import (
	"database/sql"
	"fmt"
)

func mustPrepare(db *sql.DB, query string) *sql.Stmt {
	stmt, err := db.Prepare(query)
	if err != nil {
		panic(fmt.Errorf("preparing %q: %w", query, err))
	}
	return stmt
}
