package cookiestore

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/warpdl/cookieparse/pkg/logger"
)

// Import reads the cookies for domain from the store at path and returns
// them as a Cookie header value together with a description of the store.
func Import(fs afero.Fs, path, domain string, log logger.Logger) (string, *Source, error) {
	entries, source, err := ImportEntries(fs, path, domain, log)
	if err != nil {
		return "", nil, err
	}
	return BuildHeader(entries), source, nil
}

// ImportEntries is Import without the final header rendering.
func ImportEntries(fs afero.Fs, path, domain string, log logger.Logger) ([]Entry, *Source, error) {
	if domain == "" {
		return nil, nil, fmt.Errorf("error: a domain is required to import cookies")
	}
	if log == nil {
		log = logger.NewNopLogger()
	}
	if err := checkStoreFile(fs, path); err != nil {
		return nil, nil, err
	}
	isSQLite, err := sniff(fs, path)
	if err != nil {
		return nil, nil, err
	}

	source := &Source{Path: path}
	var entries []Entry

	if isSQLite {
		var (
			dbPath  string
			cleanup func()
		)
		dbPath, cleanup, err = SafeCopy(fs, path)
		if err != nil {
			return nil, nil, err
		}
		defer cleanup()

		if source.Format, err = probeSQLite(dbPath); err != nil {
			return nil, nil, err
		}
		switch source.Format {
		case FormatFirefox:
			entries, err = ReadFirefox(dbPath, domain)
		case FormatChrome:
			entries, err = ReadChrome(dbPath, domain, log)
		}
	} else {
		source.Format = FormatNetscape
		entries, err = ReadNetscape(fs, path, domain, log)
	}
	if err != nil {
		return nil, nil, err
	}

	source.Count = len(entries)
	log.Info("imported %d cookies for %s from %s store", source.Count, domain, source.Format)
	return entries, source, nil
}
