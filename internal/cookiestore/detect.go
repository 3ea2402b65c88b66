package cookiestore

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	_ "modernc.org/sqlite"
)

// sqliteMagic is the first 16 bytes of any SQLite database file.
var sqliteMagic = []byte("SQLite format 3\x00")

// DetectFormat reports the format of the store at path. SQLite stores are
// copied out of fs before their tables are inspected.
func DetectFormat(fs afero.Fs, path string) (Format, error) {
	if err := checkStoreFile(fs, path); err != nil {
		return FormatUnknown, err
	}
	isSQLite, err := sniff(fs, path)
	if err != nil {
		return FormatUnknown, err
	}
	if !isSQLite {
		return FormatNetscape, nil
	}

	dbPath, cleanup, err := SafeCopy(fs, path)
	if err != nil {
		return FormatUnknown, err
	}
	defer cleanup()
	return probeSQLite(dbPath)
}

// sniff reads the head of the file. It returns true for SQLite, false for a
// Netscape cookie file and ErrUnsupportedFormat for anything else.
func sniff(fs afero.Fs, path string) (bool, error) {
	f, err := fs.Open(path)
	if err != nil {
		return false, fmt.Errorf("error: cannot open cookie store: %w", err)
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return false, fmt.Errorf("error: cannot read cookie store: %w", err)
	}
	head = head[:n]

	if bytes.HasPrefix(head, sqliteMagic) {
		return true, nil
	}

	firstLine := string(head)
	if idx := strings.IndexByte(firstLine, '\n'); idx >= 0 {
		firstLine = firstLine[:idx]
	}
	firstLine = strings.TrimRight(firstLine, "\r")
	if firstLine == "# Netscape HTTP Cookie File" || firstLine == "# HTTP Cookie File" {
		return false, nil
	}
	return false, fmt.Errorf("error: %s: %w", path, ErrUnsupportedFormat)
}

// probeSQLite opens a copied SQLite store and picks the format by the
// cookie table it contains.
func probeSQLite(dbPath string) (Format, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", dbPath))
	if err != nil {
		return FormatUnknown, fmt.Errorf("error: cannot open SQLite database: %w", err)
	}
	defer db.Close()

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='moz_cookies'`).Scan(&name)
	if err == nil {
		return FormatFirefox, nil
	}
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='cookies'`).Scan(&name)
	if err == nil {
		return FormatChrome, nil
	}
	return FormatUnknown, fmt.Errorf("error: %s: %w", dbPath, ErrUnsupportedFormat)
}
