package cookiestore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"github.com/warpdl/cookieparse/pkg/logger"
)

// Browser lists where one browser keeps the cookies of its default profile.
type Browser struct {
	Name string
	// Stores are cookie database candidates. The first one that exists is used.
	Stores []string
	// ProfileIndexes are profiles.ini candidates of Firefox-family browsers,
	// whose default profile holds a cookies.sqlite.
	ProfileIndexes []string
}

// Dirs holds the base directories browser profiles are looked up under.
type Dirs struct {
	GOOS string
	Home string
	// AppData and LocalAppData are only used on Windows.
	AppData      string
	LocalAppData string
}

// DefaultDirs returns the directories of the current user.
func DefaultDirs() Dirs {
	home, _ := os.UserHomeDir()
	return Dirs{
		GOOS:         runtime.GOOS,
		Home:         home,
		AppData:      os.Getenv("APPDATA"),
		LocalAppData: os.Getenv("LOCALAPPDATA"),
	}
}

// KnownBrowsers returns the supported browsers in lookup order:
// Firefox, LibreWolf, Chrome, Chromium, Edge, Brave.
func KnownBrowsers(d Dirs) []Browser {
	var firefox, librewolf []string
	var chromium [4]string // Chrome, Chromium, Edge, Brave profile dirs

	switch d.GOOS {
	case "windows":
		firefox = []string{filepath.Join(d.AppData, "Mozilla", "Firefox", "profiles.ini")}
		librewolf = []string{filepath.Join(d.AppData, "LibreWolf", "profiles.ini")}
		chromium = [4]string{
			filepath.Join(d.LocalAppData, "Google", "Chrome", "User Data", "Default"),
			filepath.Join(d.LocalAppData, "Chromium", "User Data", "Default"),
			filepath.Join(d.LocalAppData, "Microsoft", "Edge", "User Data", "Default"),
			filepath.Join(d.LocalAppData, "BraveSoftware", "Brave-Browser", "User Data", "Default"),
		}
	case "darwin":
		support := filepath.Join(d.Home, "Library", "Application Support")
		firefox = []string{filepath.Join(support, "Firefox", "profiles.ini")}
		librewolf = []string{filepath.Join(support, "librewolf", "profiles.ini")}
		chromium = [4]string{
			filepath.Join(support, "Google", "Chrome", "Default"),
			filepath.Join(support, "Chromium", "Default"),
			filepath.Join(support, "Microsoft Edge", "Default"),
			filepath.Join(support, "BraveSoftware", "Brave-Browser", "Default"),
		}
	default:
		firefox = []string{
			filepath.Join(d.Home, ".mozilla", "firefox", "profiles.ini"),
			filepath.Join(d.Home, "snap", "firefox", "common", ".mozilla", "firefox", "profiles.ini"),
		}
		librewolf = []string{filepath.Join(d.Home, ".librewolf", "profiles.ini")}
		config := filepath.Join(d.Home, ".config")
		chromium = [4]string{
			filepath.Join(config, "google-chrome", "Default"),
			filepath.Join(config, "chromium", "Default"),
			filepath.Join(config, "microsoft-edge", "Default"),
			filepath.Join(config, "BraveSoftware", "Brave-Browser", "Default"),
		}
	}

	browsers := []Browser{
		{Name: "Firefox", ProfileIndexes: firefox},
		{Name: "LibreWolf", ProfileIndexes: librewolf},
	}
	for i, name := range []string{"Chrome", "Chromium", "Edge", "Brave"} {
		browsers = append(browsers, Browser{Name: name, Stores: chromiumStores(chromium[i])})
	}
	return browsers
}

// Newer Chromium builds moved the database under Network/.
func chromiumStores(profile string) []string {
	return []string{
		filepath.Join(profile, "Network", "Cookies"),
		filepath.Join(profile, "Cookies"),
	}
}

// DetectBrowser imports the cookies for domain from the first browser in
// browsers that has a readable store. Stores that fail to import are
// skipped with a warning.
func DetectBrowser(fs afero.Fs, browsers []Browser, domain string, log logger.Logger) (string, *Source, error) {
	if log == nil {
		log = logger.NewNopLogger()
	}
	for _, b := range browsers {
		for _, path := range b.candidates(fs) {
			if _, err := fs.Stat(path); err != nil {
				continue
			}
			entries, source, err := ImportEntries(fs, path, domain, log)
			if err != nil {
				log.Warning("skipping %s store %s: %v", b.Name, path, err)
				continue
			}
			source.Browser = b.Name
			return BuildHeader(entries), source, nil
		}
	}
	names := make([]string, len(browsers))
	for i, b := range browsers {
		names[i] = b.Name
	}
	return "", nil, fmt.Errorf("error: %w (tried %s)", ErrNoBrowserStore, strings.Join(names, ", "))
}

func (b Browser) candidates(fs afero.Fs) []string {
	if len(b.ProfileIndexes) == 0 {
		return b.Stores
	}
	var paths []string
	for _, ini := range b.ProfileIndexes {
		if dir := defaultProfile(fs, ini); dir != "" {
			paths = append(paths, filepath.Join(dir, "cookies.sqlite"))
		}
	}
	return paths
}

// defaultProfile returns the default profile directory named by a
// profiles.ini file. The Default key of an [Install*] section wins over a
// [Profile*] section marked Default=1. Missing or unreadable files give "".
func defaultProfile(fs afero.Fs, iniPath string) string {
	f, err := fs.Open(iniPath)
	if err != nil {
		return ""
	}
	defer f.Close()

	base := filepath.Dir(iniPath)
	var (
		installDefault string
		profileDefault string
		section        string
		profilePath    string
		isDefault      bool
	)
	resolve := func(v string) string {
		p := filepath.FromSlash(v)
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	flush := func() {
		if strings.HasPrefix(section, "Profile") && isDefault && profileDefault == "" {
			profileDefault = profilePath
		}
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			flush()
			section = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			profilePath, isDefault = "", false
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key, val := strings.TrimSpace(k), strings.TrimSpace(v)
		switch {
		case strings.HasPrefix(section, "Install") && key == "Default" && installDefault == "":
			installDefault = resolve(val)
		case strings.HasPrefix(section, "Profile") && key == "Path":
			profilePath = resolve(val)
		case strings.HasPrefix(section, "Profile") && key == "Default" && val == "1":
			isDefault = true
		}
	}
	flush()

	if installDefault != "" {
		return installDefault
	}
	return profileDefault
}
