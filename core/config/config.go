package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
	AppLogName        = "app.log"
)

// Configuration holds the shell's tunable settings. The zero value is
// not useful; start from Default or Load.
type Configuration struct {
	configFs afero.Fs

	// Prompt is written before each line read.
	Prompt string `json:"prompt" validate:"required"`

	// Motd is printed once before the first prompt, if set.
	Motd string `json:"motd"`

	// HistoryFile is the interactive history file name, relative to
	// the configuration directory. Empty keeps history in memory.
	HistoryFile string `json:"history_file"`

	// NoColor disables colored output.
	NoColor bool `json:"no_color"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// defaultConfig parses the embedded default configuration, panicking on
// failure because that is a build defect rather than a runtime error.
func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// Default returns the built-in configuration used when no config
// directory has been initialized. It is backed by an in-memory
// filesystem so the app log has somewhere to go.
func Default() *Configuration {
	out := defaultConfig()
	out.configFs = afero.NewMemMapFs()
	return out
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// OpenAppLog opens the application log in an append only state.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	return c.fs().OpenFile(AppLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadAppLog opens the application log for reading.
func (c *Configuration) ReadAppLog() (afero.File, error) {
	return c.fs().OpenFile(AppLogName, os.O_RDONLY, 0600)
}

// HistoryPath resolves the history file location under the
// configuration directory, or "" if history is disabled.
func (c *Configuration) HistoryPath(configDir string) string {
	if c.HistoryFile == "" {
		return ""
	}
	return filepath.Join(configDir, c.HistoryFile)
}
