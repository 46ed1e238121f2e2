package db

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gabriel-vasile/mimetype"
	_ "modernc.org/sqlite"
)

// Vacuum compacts the SQLite database at path in place, reclaiming freed
// pages. A missing file is not an error and reports vacuumed=false. The
// magic bytes are checked first so a stray non-database file that happens
// to carry the database name is left alone.
func Vacuum(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat database: %w", err)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return false, fmt.Errorf("detect database type: %w", err)
	}
	if !mtype.Is("application/vnd.sqlite3") {
		return false, fmt.Errorf("%s is not a SQLite database (detected %s)", path, mtype)
	}

	conn, err := sql.Open("sqlite", path+"?mode=rw")
	if err != nil {
		return false, fmt.Errorf("open database: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Exec("VACUUM"); err != nil {
		return false, fmt.Errorf("vacuum: %w", err)
	}
	return true, nil
}
