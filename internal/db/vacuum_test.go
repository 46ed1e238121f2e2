package db

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func TestVacuumMissingFileIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.sqlite3")

	vacuumed, err := Vacuum(path)
	if err != nil {
		t.Fatalf("Vacuum on missing file: %v", err)
	}
	if vacuumed {
		t.Error("reported vacuumed for a missing file")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Vacuum created a file")
	}
}

func TestVacuumRejectsNonDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.sqlite3")
	if err := os.WriteFile(path, []byte("definitely not sqlite"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Vacuum(path); err == nil {
		t.Fatal("expected an error for a non-database file")
	}
}

func TestVacuumPreservesContentsAndShrinks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.sqlite3")

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec(`CREATE TABLE uploads (id INTEGER PRIMARY KEY, name TEXT)`); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 500; i++ {
		if _, err := conn.Exec(`INSERT INTO uploads (name) VALUES (?)`, "archivo.xlsx"); err != nil {
			t.Fatal(err)
		}
	}
	// Leave free pages behind so the vacuum has something to reclaim.
	if _, err := conn.Exec(`DELETE FROM uploads WHERE id % 2 = 0`); err != nil {
		t.Fatal(err)
	}
	if err := conn.Close(); err != nil {
		t.Fatal(err)
	}

	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	vacuumed, err := Vacuum(path)
	if err != nil {
		t.Fatalf("Vacuum: %v", err)
	}
	if !vacuumed {
		t.Fatal("expected vacuumed=true")
	}

	after, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if after.Size() > before.Size() {
		t.Errorf("database grew: %d -> %d bytes", before.Size(), after.Size())
	}

	conn, err = sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM uploads`).Scan(&count); err != nil {
		t.Fatalf("query after vacuum: %v", err)
	}
	if count != 250 {
		t.Errorf("row count after vacuum = %d, want 250", count)
	}
}
