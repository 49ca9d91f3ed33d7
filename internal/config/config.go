package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
}

// Database contains catalog database configuration.
type Database struct {
	// Path overrides the default location of <data_dir>/catalog.db.
	Path string `toml:"path"`
}

// TMDB contains configuration for the optional external identity resolver.
// Detection works without it; when enabled, person lookups blend extra
// confidence into duplicate groups.
type TMDB struct {
	Enabled  bool   `toml:"enabled"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
	Language string `toml:"language"`
}

// Detection contains duplicate detection tuning.
type Detection struct {
	// MovieLimit bounds how many movies a detection pass scans.
	MovieLimit int `toml:"movie_limit"`
	// MaxResults truncates the emitted duplicate groups for human review.
	MaxResults int `toml:"max_results"`
	// MinConfidence is the threshold for automatic merge candidates.
	MinConfidence float64 `toml:"min_confidence"`
}

// Collaboration contains collaboration report tuning.
type Collaboration struct {
	// MinMovies drops pairs that co-occur in fewer movies than this.
	MinMovies int `toml:"min_movies"`
}

// Merge contains merge engine behavior.
type Merge struct {
	// PreserveAnalytics is recorded on every merge log entry so downstream
	// analytics jobs know whether pre-merge aggregates were kept.
	PreserveAnalytics bool `toml:"preserve_analytics"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for castmerge.
type Config struct {
	Paths         Paths         `toml:"paths"`
	Database      Database      `toml:"database"`
	TMDB          TMDB          `toml:"tmdb"`
	Detection     Detection     `toml:"detection"`
	Collaboration Collaboration `toml:"collaboration"`
	Merge         Merge         `toml:"merge"`
	Logging       Logging       `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/castmerge/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The second and third
// return values report which path was resolved and whether a file existed
// there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("castmerge.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = ExpandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Database.Path) != "" {
		if c.Database.Path, err = ExpandPath(c.Database.Path); err != nil {
			return fmt.Errorf("database.path: %w", err)
		}
	}
	if key := strings.TrimSpace(os.Getenv("TMDB_API_KEY")); key != "" && c.TMDB.APIKey == "" {
		c.TMDB.APIKey = key
	}
	if strings.TrimSpace(c.TMDB.BaseURL) == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	c.TMDB.BaseURL = strings.TrimRight(c.TMDB.BaseURL, "/")
	if strings.TrimSpace(c.TMDB.Language) == "" {
		c.TMDB.Language = defaultTMDBLanguage
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

// DatabasePath returns the resolved catalog database location.
func (c *Config) DatabasePath() string {
	if strings.TrimSpace(c.Database.Path) != "" {
		return c.Database.Path
	}
	return filepath.Join(c.Paths.DataDir, "catalog.db")
}

// LockPath returns the advisory lock file guarding mutating merge runs.
func (c *Config) LockPath() string {
	return c.DatabasePath() + ".lock"
}

// EnsureDirectories creates the directories castmerge writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.DataDir, c.Paths.LogDir, filepath.Dir(c.DatabasePath())}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// CreateSample writes the embedded sample configuration to the target path.
func CreateSample(target string) error {
	if err := os.WriteFile(target, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExpandPath resolves ~ prefixes and returns an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
