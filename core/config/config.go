package config

import (
	_ "embed"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	configFs afero.Fs

	Prompt           string `json:"prompt" validate:"required"`
	DiagnosticPrefix string `json:"diagnostic_prefix"`
	Color            string `json:"color" validate:"oneof=auto always never"`

	Pager Pager `json:"pager"`
	Tree  Tree  `json:"tree"`
	Yes   Yes   `json:"yes"`
	Log   Log   `json:"log"`
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

type Pager struct {
	PageSize   int      `json:"page_size" validate:"gte=1"`
	PollWaitMs int      `json:"poll_wait_ms" validate:"gte=0"`
	Encodings  []string `json:"encodings" validate:"required,min=1,dive,required"`
	Marker     string   `json:"marker" validate:"required"`
}

// PollWait is the longest the pager blocks at the marker waiting for input.
func (p Pager) PollWait() time.Duration {
	return time.Duration(p.PollWaitMs) * time.Millisecond
}

type Tree struct {
	MaxDepth int `json:"max_depth" validate:"gte=1"`
}

type Yes struct {
	BytesPerSecond int64 `json:"bytes_per_second" validate:"gte=0"`
}

type Log struct {
	Level string `json:"level" validate:"oneof=debug info warn error"`
	File  string `json:"file" validate:"required"`
}

// ColorEnabled resolves the color mode against whether output is a terminal.
func (c *Configuration) ColorEnabled(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewMemMapFs()
	}
	return c.configFs
}

// OpenAppLog opens the application log in an append only state.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	if err := c.fs().MkdirAll(".", 0700); err != nil {
		return nil, err
	}
	return c.fs().OpenFile(c.Log.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

func (c *Configuration) ReadAppLog() (afero.File, error) {
	return c.fs().OpenFile(c.Log.File, os.O_RDONLY, 0600)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
