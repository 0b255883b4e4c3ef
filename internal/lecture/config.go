package lecture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/tailscale/hujson"
)

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	NotesDir  string `json:"notes_dir"`
	Extension string `json:"extension,omitempty"`
	LogFile   string `json:"log_file,omitempty"`
	Editor    string `json:"editor,omitempty"`

	// Resolved paths (computed, not serialized)
	EffectiveCwd string `json:"-"` // Absolute working directory (from -C flag or os.Getwd)
	NotesDirAbs  string `json:"-"` // Absolute path to the notes directory
	LogFileAbs   string `json:"-"` // Absolute path to the append-only log

	// Sources tracks which config files were loaded (for diagnostics)
	Sources ConfigSources `json:"-"`
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		NotesDir:  "notes",
		Extension: ".tex",
		LogFile:   "lectures.log",
	}
}

// ConfigFileName is the default project config file name.
const ConfigFileName = ".lectern.json"

// EnvNotesDir overrides the notes directory from the environment.
const EnvNotesDir = "LECTERN_NOTES_DIR"

// getGlobalConfigPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/lectern/config.json if set, otherwise
// ~/.config/lectern/config.json. Empty when no home can be determined.
func getGlobalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "lectern", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "lectern", "config.json")
	}

	return ""
}

// LoadConfigInput holds the inputs for LoadConfig.
type LoadConfigInput struct {
	WorkDirOverride  string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath       string            // -c/--config flag value
	NotesDirOverride string            // --notes-dir flag value; empty means no override
	Env              map[string]string // environment variables
}

// LoadConfig loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config ($XDG_CONFIG_HOME/lectern/config.json or ~/.config/lectern/config.json)
// 3. Project config file at default location (.lectern.json, if exists)
// 4. Explicit config file via ConfigPath (if non-empty)
// 5. LECTERN_NOTES_DIR environment variable
// 6. CLI overrides.
//
// All paths in the returned Config are resolved to absolute paths.
func LoadConfig(input LoadConfigInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := DefaultConfig()

	globalCfg, globalPath, err := loadGlobalConfig(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalPath
	cfg = mergeConfig(cfg, globalCfg)

	projectCfg, projectPath, err := loadProjectConfig(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectPath
	cfg = mergeConfig(cfg, projectCfg)

	if envDir := input.Env[EnvNotesDir]; envDir != "" {
		cfg.NotesDir = envDir
	}

	if input.NotesDirOverride != "" {
		cfg.NotesDir = input.NotesDirOverride
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return Config{}, validateErr
	}

	cfg.EffectiveCwd = workDir
	cfg.NotesDirAbs = absFrom(workDir, cfg.NotesDir)

	if filepath.IsAbs(cfg.LogFile) {
		cfg.LogFileAbs = cfg.LogFile
	} else {
		// The log lives inside the notes directory by default.
		cfg.LogFileAbs = filepath.Join(cfg.NotesDirAbs, cfg.LogFile)
	}

	return cfg, nil
}

// Validate checks the merged configuration before paths are resolved.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.NotesDir, validation.Required),
		validation.Field(&c.Extension, validation.Required,
			validation.By(func(any) error {
				if !strings.HasPrefix(c.Extension, ".") {
					return fmt.Errorf("must start with %q", ".")
				}
				return nil
			})),
		validation.Field(&c.LogFile, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}

	return nil
}

func absFrom(workDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(workDir, path)
}

// loadGlobalConfig loads the global user config file if it exists.
// Returns the config, the path if loaded, and any error.
func loadGlobalConfig(env map[string]string) (Config, string, error) {
	globalCfgPath := getGlobalConfigPath(env)
	if globalCfgPath == "" {
		return Config{}, "", nil
	}

	globalCfg, loaded, err := loadConfigFile(globalCfgPath, false)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	return globalCfg, globalCfgPath, nil
}

// loadProjectConfig loads the project config file (.lectern.json) or an
// explicit config file. Returns the config, the path if loaded, and any error.
func loadProjectConfig(workDir, configPath string) (Config, string, error) {
	var cfgFile string

	var mustExist bool

	if configPath != "" {
		// Explicit config file - must exist
		cfgFile = configPath
		if !filepath.IsAbs(cfgFile) {
			cfgFile = filepath.Join(workDir, cfgFile)
		}

		mustExist = true

		_, statErr := os.Stat(cfgFile)
		if statErr != nil {
			return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	} else {
		// Default project config file - optional
		cfgFile = filepath.Join(workDir, ConfigFileName)
		mustExist = false
	}

	fileCfg, loaded, err := loadConfigFile(cfgFile, mustExist)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	return fileCfg, cfgFile, nil
}

// loadConfigFile loads a config file. If mustExist is false, missing
// files return zero config. Returns the config, whether the file was
// loaded, and any error.
func loadConfigFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, false, nil
		}

		if mustExist {
			return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
		}

		return Config{}, false, nil
	}

	cfg, parseErr := parseConfig(data)
	if parseErr != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, parseErr)
	}

	return cfg, true, nil
}

// parseConfig parses a HuJSON (JSON with comments and trailing commas)
// config file.
func parseConfig(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	if unmarshalErr := json.Unmarshal(standardized, &cfg); unmarshalErr != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	return cfg, nil
}

// mergeConfig overlays non-empty values from overlay onto base.
func mergeConfig(base, overlay Config) Config {
	if overlay.NotesDir != "" {
		base.NotesDir = overlay.NotesDir
	}

	if overlay.Extension != "" {
		base.Extension = overlay.Extension
	}

	if overlay.LogFile != "" {
		base.LogFile = overlay.LogFile
	}

	if overlay.Editor != "" {
		base.Editor = overlay.Editor
	}

	return base
}

// WriteProjectConfig writes a fresh .lectern.json in workDir. Used by
// init; refuses to clobber an existing file.
func WriteProjectConfig(workDir string, cfg Config) (string, error) {
	path := filepath.Join(workDir, ConfigFileName)

	if _, err := os.Stat(path); err == nil {
		return path, nil // keep the existing config
	}

	data, err := json.MarshalIndent(struct {
		NotesDir  string `json:"notes_dir"`
		Extension string `json:"extension"`
		LogFile   string `json:"log_file"`
	}{cfg.NotesDir, cfg.Extension, cfg.LogFile}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}

	if writeErr := os.WriteFile(path, append(data, '\n'), filePerms); writeErr != nil {
		return "", fmt.Errorf("writing config: %w", writeErr)
	}

	return path, nil
}
