// Package config handles all the user-configuration for fmcore. The fields
// here are all in PascalCase but in your actual config.yml they'll be in
// camelCase. You can view the default config by passing --config to a binary
// that embeds this package.
// Because of the way we merge your user config with the defaults you may
// need to be careful: if for example you set a `preview:` yaml key but then
// give it no child values, it will scrap all of the defaults.
package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/OpenPeeDeeP/xdg"
	yaml "github.com/jesseduffield/yaml"
)

// UserConfig holds all of the user-configurable options
type UserConfig struct {
	// Preview controls image/video preview sizing and text tab expansion
	Preview PreviewConfig `yaml:"preview,omitempty"`

	// Theme controls syntax highlighting theme selection
	Theme ThemeConfig `yaml:"theme,omitempty"`

	// Open maps (path, mime) to ordered lists of openers
	Open OpenConfig `yaml:"open,omitempty"`

	// Layout holds the viewport and task-pane partitioning constants
	Layout LayoutConfig `yaml:"layout,omitempty"`
}

// PreviewConfig caps the image preview budget and text tab width
type PreviewConfig struct {
	// MaxWidth is the maximum width, in pixels, of a decoded preview image
	MaxWidth int `yaml:"maxWidth,omitempty"`

	// MaxHeight is the maximum height, in pixels, of a decoded preview image
	MaxHeight int `yaml:"maxHeight,omitempty"`

	// TabSize is the number of spaces a tab is expanded to before highlighting
	TabSize int `yaml:"tabSize,omitempty"`
}

// ThemeConfig is for configuring syntax highlighting
type ThemeConfig struct {
	Preview PreviewThemeConfig `yaml:"preview,omitempty"`
}

// PreviewThemeConfig names the theme used for syntax-highlighted previews
type PreviewThemeConfig struct {
	// SyntectTheme is a path to a user theme file. When empty, the built-in
	// fallback theme (see FallbackThemeName) is used.
	SyntectTheme string `yaml:"syntectTheme,omitempty"`
}

// Opener describes a single external-program rule for acting on a path
type Opener struct {
	// Command is a template, e.g. "xdg-open {{.path}}"
	Command string `yaml:"command"`

	// Spread means "batch all args into one invocation" rather than invoking
	// once per argument
	Spread bool `yaml:"spread,omitempty"`
}

// OpenRule maps a mime pattern (exact string, or "*/*" style prefix ending in
// "/*") to the ordered openers tried for it
type OpenRule struct {
	Mime    string   `yaml:"mime"`
	Openers []Opener `yaml:"openers"`
}

// OpenConfig holds the rules mapping (path, mime) to openers
type OpenConfig struct {
	Rules []OpenRule `yaml:"rules,omitempty"`
}

// LayoutConfig holds the viewport partitioning and task-pane constants
type LayoutConfig struct {
	// AllRatio and PreviewRatio determine what fraction of the terminal's
	// columns the preview pane gets: cols * PreviewRatio / AllRatio
	AllRatio     int `yaml:"allRatio,omitempty"`
	PreviewRatio int `yaml:"previewRatio,omitempty"`

	// PreviewBorder and PreviewPadding are subtracted from the column/row
	// budget respectively, saturating at zero
	PreviewBorder  int `yaml:"previewBorder,omitempty"`
	PreviewPadding int `yaml:"previewPadding,omitempty"`

	// TasksPercent and TasksPadding determine how many running-task summaries
	// paginate() returns: floor(term_rows * TasksPercent / 100) - TasksPadding
	TasksPercent int `yaml:"tasksPercent,omitempty"`
	TasksPadding int `yaml:"tasksPadding,omitempty"`
}

// FallbackThemeName is the built-in theme used when no user theme file is
// configured, or when the configured theme file fails to load
const FallbackThemeName = "monokai"

// GetDefaultConfig returns the application default configuration. NOTE (to
// contributors, not users): do not default a boolean to true, because false
// is the boolean zero value and this will be ignored when parsing the user's
// config.
func GetDefaultConfig() UserConfig {
	return UserConfig{
		Preview: PreviewConfig{
			MaxWidth:  1920,
			MaxHeight: 1080,
			TabSize:   2,
		},
		Theme: ThemeConfig{
			Preview: PreviewThemeConfig{
				SyntectTheme: "",
			},
		},
		Open: OpenConfig{
			Rules: []OpenRule{
				{
					Mime: "text/*",
					Openers: []Opener{
						{Command: "${EDITOR:-vi} {{.path}}"},
					},
				},
				{
					Mime: "*/*",
					Openers: []Opener{
						{Command: "xdg-open {{.path}}"},
					},
				},
			},
		},
		Layout: LayoutConfig{
			AllRatio:       10,
			PreviewRatio:   3,
			PreviewBorder:  2,
			PreviewPadding: 2,
			TasksPercent:   30,
			TasksPadding:   2,
		},
	}
}

// AppConfig contains the base configuration fields required by fmcore.
type AppConfig struct {
	Debug       bool   `long:"debug" env:"DEBUG" default:"false"`
	Version     string `long:"version" env:"VERSION" default:"unversioned"`
	Commit      string `long:"commit" env:"COMMIT"`
	BuildDate   string `long:"build-date" env:"BUILD_DATE"`
	Name        string `long:"name" env:"NAME" default:"fmcore"`
	UserConfig  *UserConfig
	ConfigDir   string
}

// NewAppConfig makes a new app config, loading any user overrides from
// $CONFIG_DIR/config.yml (or the platform config directory) over the
// defaults.
func NewAppConfig(name, version, commit, date string, debuggingFlag bool) (*AppConfig, error) {
	configDir, err := findOrCreateConfigDir(name)
	if err != nil {
		return nil, err
	}

	userConfig, err := loadUserConfigWithDefaults(configDir)
	if err != nil {
		return nil, err
	}

	appConfig := &AppConfig{
		Name:       name,
		Version:    version,
		Commit:     commit,
		BuildDate:  date,
		Debug:      debuggingFlag || os.Getenv("DEBUG") == "TRUE",
		UserConfig: userConfig,
		ConfigDir:  configDir,
	}

	return appConfig, nil
}

func configDirForVendor(vendor string, projectName string) string {
	envConfigDir := os.Getenv("CONFIG_DIR")
	if envConfigDir != "" {
		return envConfigDir
	}
	configDirs := xdg.New(vendor, projectName)
	return configDirs.ConfigHome()
}

func findOrCreateConfigDir(projectName string) (string, error) {
	folder := configDirForVendor("", projectName)

	err := os.MkdirAll(folder, 0o755)
	if err != nil {
		return "", err
	}

	return folder, nil
}

func loadUserConfigWithDefaults(configDir string) (*UserConfig, error) {
	config := GetDefaultConfig()

	return loadUserConfig(configDir, &config)
}

func loadUserConfig(configDir string, base *UserConfig) (*UserConfig, error) {
	fileName := filepath.Join(configDir, "config.yml")

	if _, err := os.Stat(fileName); err != nil {
		if os.IsNotExist(err) {
			file, err := os.Create(fileName)
			if err != nil {
				return nil, err
			}
			file.Close()
		} else {
			return nil, err
		}
	}

	content, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(content, base); err != nil {
		return nil, err
	}

	return base, nil
}

// WriteToUserConfig allows you to set a value on the user config to be saved.
// Note that if you set a zero-value, it may be ignored since we're using the
// omitempty yaml directive so that we don't write a heap of zero values to
// the user's config.yml.
func (c *AppConfig) WriteToUserConfig(updateConfig func(*UserConfig) error) error {
	userConfig, err := loadUserConfig(c.ConfigDir, &UserConfig{})
	if err != nil {
		return err
	}

	if err := updateConfig(userConfig); err != nil {
		return err
	}

	file, err := os.OpenFile(c.ConfigFilename(), os.O_WRONLY|os.O_CREATE, 0o666)
	if err != nil {
		return err
	}

	return yaml.NewEncoder(file).Encode(userConfig)
}

// ConfigFilename returns the filename of the current config file
func (c *AppConfig) ConfigFilename() string {
	return filepath.Join(c.ConfigDir, "config.yml")
}
