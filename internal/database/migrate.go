package database

import (
	"fmt"
)

// schema is executed once by Provision. There is deliberately no
// IF NOT EXISTS: provisioning an existing database must fail.
const schema = `
	CREATE TABLE alimentos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT NOT NULL,
		tipo TEXT NOT NULL,
		cor TEXT NOT NULL,
		mes_colheita TEXT NOT NULL,
		categoria TEXT NOT NULL
	)
`

// Provision creates the database file at path and the alimentos table in it
func Provision(path string) (err error) {
	db, err := Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := Close(db); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close database: %w", cerr)
		}
	}()

	if err := db.Exec(schema).Error; err != nil {
		return fmt.Errorf("failed to create alimentos table: %w", err)
	}

	return nil
}
