package cookiestore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/warpdl/cookieparse/pkg/logger"
	_ "modernc.org/sqlite"
)

// chromeEpochOffsetSeconds is the number of seconds between 1601-01-01 UTC,
// Chrome's timestamp epoch, and the Unix epoch.
const chromeEpochOffsetSeconds int64 = 11_644_473_600

// unixToChrome converts Unix seconds to Chrome microseconds.
func unixToChrome(unixSec int64) int64 {
	return (unixSec + chromeEpochOffsetSeconds) * 1_000_000
}

// ReadChrome returns the unexpired cookies for domain from a Chrome Cookies
// file. Rows with a plain value are used as is; rows with only an
// encrypted value are decrypted when they use the "v10" scheme and skipped
// otherwise. dbPath must point at a copy, not the live store.
func ReadChrome(dbPath, domain string, log logger.Logger) ([]Entry, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?immutable=1", dbPath))
	if err != nil {
		return nil, fmt.Errorf("error: cannot open Chrome cookie database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
        SELECT name, value, encrypted_value, host_key, path
        FROM cookies
        WHERE (host_key = ? OR host_key = ? OR host_key LIKE ?)
          AND (value != '' OR length(encrypted_value) > 0)
          AND expires_utc > ?
        ORDER BY path DESC, name ASC
    `, domain, "."+domain, "%."+domain, unixToChrome(time.Now().Unix()))
	if err != nil {
		return nil, fmt.Errorf("error: failed to query Chrome cookies: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			encrypted []byte
		)
		if err := rows.Scan(&e.Name, &e.Value, &encrypted, &e.Host, &e.Path); err != nil {
			return nil, fmt.Errorf("error: failed to scan Chrome cookie row: %w", err)
		}
		if e.Value == "" {
			v, ok := decryptChromeValue(encrypted, e.Host)
			if !ok {
				log.Warning("skipping encrypted Chrome cookie %q for %s", e.Name, e.Host)
				continue
			}
			e.Value = v
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error: failed to iterate Chrome cookie rows: %w", err)
	}
	return entries, nil
}
