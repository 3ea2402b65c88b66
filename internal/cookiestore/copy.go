package cookiestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// SafeCopy copies a SQLite store, and its -wal and -shm companions when
// present, from fs into a new temporary directory on the real filesystem.
// It returns the path of the copied main file and a cleanup function that
// the caller must call when done.
func SafeCopy(fs afero.Fs, srcPath string) (dbPath string, cleanup func(), err error) {
	if err := checkStoreFile(fs, srcPath); err != nil {
		return "", nil, err
	}

	tempDir, err := os.MkdirTemp("", "cookieparse-store-*")
	if err != nil {
		return "", nil, fmt.Errorf("error: cannot create temp directory: %w", err)
	}
	cleanup = func() {
		os.RemoveAll(tempDir)
	}

	baseName := filepath.Base(srcPath)
	dbPath = filepath.Join(tempDir, baseName)
	if err := copyFile(fs, srcPath, dbPath); err != nil {
		cleanup()
		return "", nil, err
	}

	// Companions are best-effort.
	for _, suffix := range []string{"-wal", "-shm"} {
		companion := srcPath + suffix
		if ok, _ := afero.Exists(fs, companion); ok {
			_ = copyFile(fs, companion, dbPath+suffix)
		}
	}

	return dbPath, cleanup, nil
}

// checkStoreFile rejects missing, directory and empty store paths.
func checkStoreFile(fs afero.Fs, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("error: cookie store not found: %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("error: %s is a directory, expected a cookie store file", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("error: %s: %w", path, ErrEmptyStore)
	}
	return nil
}

func copyFile(fs afero.Fs, src, dst string) error {
	in, err := fs.Open(src)
	if err != nil {
		return fmt.Errorf("error: cannot open source file %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("error: cannot create destination file %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("error: cannot copy file: %w", err)
	}
	return nil
}
