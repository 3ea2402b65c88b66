package cookiestore

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/warpdl/cookieparse/pkg/logger"
)

const httpOnlyPrefix = "#HttpOnly_"

// ReadNetscape returns the unexpired cookies for domain from a Netscape
// cookie file. Comment lines are skipped, except that a "#HttpOnly_"
// prefix marks a regular line. Malformed lines are skipped with a warning.
func ReadNetscape(fs afero.Fs, path, domain string, log logger.Logger) ([]Entry, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error: cannot open Netscape cookie file: %w", err)
	}
	defer f.Close()

	now := time.Now()
	var entries []Entry

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, httpOnlyPrefix) {
			line = line[len(httpOnlyPrefix):]
		} else if strings.HasPrefix(line, "#") {
			continue
		}

		// domain, include-subdomains, path, secure, expiry, name, value
		fields := strings.Split(line, "\t")
		if len(fields) != 7 {
			log.Warning("skipping malformed Netscape cookie line %d", lineNo)
			continue
		}
		expiry, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			log.Warning("skipping cookie %q on line %d: invalid expiry", fields[5], lineNo)
			continue
		}

		host := fields[0]
		if !matchesDomain(host, domain) {
			continue
		}
		// Zero expiry is a session cookie.
		if expiry > 0 && time.Unix(expiry, 0).Before(now) {
			continue
		}

		entries = append(entries, Entry{
			Name:  fields[5],
			Value: fields[6],
			Host:  host,
			Path:  fields[2],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error: failed to read Netscape cookie file: %w", err)
	}
	return entries, nil
}
