// Package config reads benchmark settings from JSON, YAML or TOML documents
// and from BENCHIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mwiater/benchit/benchmark"
	"github.com/mwiater/benchit/timefmt"
)

// EnvPrefix is prepended to every key when looking up environment variables,
// e.g. BENCHIT_MIN_REPLICATIONS.
const EnvPrefix = "BENCHIT"

// Document keys.
const (
	KeyMinReplications      = "min_replications"
	KeyMaxReplications      = "max_replications"
	KeyMinExecutionTime     = "min_execution_time"
	KeySpikeDetection       = "spike_detection"
	KeySpikeDetectionFactor = "spike_detection_factor"
	KeyWarmUpRuns           = "warm_up_runs"
	KeyVerbosity            = "verbosity"
)

// Keys lists every recognized document key in display order.
var Keys = []string{
	KeyMinReplications,
	KeyMaxReplications,
	KeyMinExecutionTime,
	KeySpikeDetection,
	KeySpikeDetectionFactor,
	KeyWarmUpRuns,
	KeyVerbosity,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report document keys instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	return v
}

// document is the serialized form of benchmark.Settings.
type document struct {
	MinReplications      int              `json:"min_replications" yaml:"min_replications" validate:"gte=0"`
	MaxReplications      int              `json:"max_replications" yaml:"max_replications" validate:"gte=0"`
	MinExecutionTime     timefmt.Duration `json:"min_execution_time" yaml:"min_execution_time" validate:"gte=0"`
	SpikeDetection       bool             `json:"spike_detection" yaml:"spike_detection"`
	SpikeDetectionFactor float64          `json:"spike_detection_factor" yaml:"spike_detection_factor" validate:"gte=0"`
	WarmUpRuns           int              `json:"warm_up_runs" yaml:"warm_up_runs" validate:"gte=0"`
	Verbosity            int              `json:"verbosity" yaml:"verbosity" validate:"gte=0"`
}

func toDocument(s benchmark.Settings) document {
	return document{
		MinReplications:      s.MinReplications,
		MaxReplications:      s.MaxReplications,
		MinExecutionTime:     timefmt.Duration(s.MinExecutionTime),
		SpikeDetection:       s.SpikeDetection,
		SpikeDetectionFactor: s.SpikeDetectionFactor,
		WarmUpRuns:           s.WarmUpRuns,
		Verbosity:            s.Verbosity,
	}
}

func (d document) settings() benchmark.Settings {
	return benchmark.Settings{
		MinReplications:      d.MinReplications,
		MaxReplications:      d.MaxReplications,
		MinExecutionTime:     d.MinExecutionTime.Std(),
		SpikeDetection:       d.SpikeDetection,
		SpikeDetectionFactor: d.SpikeDetectionFactor,
		WarmUpRuns:           d.WarmUpRuns,
		Verbosity:            d.Verbosity,
	}
}

// New returns a viper instance preloaded with the default settings and bound
// to the BENCHIT_ environment.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers benchmark.DefaultSettings on v.
func SetDefaults(v *viper.Viper) {
	def := benchmark.DefaultSettings()
	v.SetDefault(KeyMinReplications, def.MinReplications)
	v.SetDefault(KeyMaxReplications, def.MaxReplications)
	v.SetDefault(KeyMinExecutionTime, timefmt.Format(def.MinExecutionTime))
	v.SetDefault(KeySpikeDetection, def.SpikeDetection)
	v.SetDefault(KeySpikeDetectionFactor, def.SpikeDetectionFactor)
	v.SetDefault(KeyWarmUpRuns, def.WarmUpRuns)
	v.SetDefault(KeyVerbosity, def.Verbosity)
}

// Load reads settings from the file at path. An empty path yields the
// defaults, overridden by the environment. A .env file in the working
// directory is loaded first if present.
func Load(path string) (benchmark.Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return benchmark.Settings{}, fmt.Errorf("load .env: %w", err)
	}

	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return benchmark.Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return FromViper(v)
}

// Decode reads settings from a document in the given format ("json",
// "yaml", "yml" or "toml").
func Decode(r io.Reader, format string) (benchmark.Settings, error) {
	v := New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return benchmark.Settings{}, fmt.Errorf("parse %s settings: %w", format, err)
	}
	return FromViper(v)
}

// FromViper maps the recognized keys of v onto benchmark.Settings. Keys that
// are not set fall back to the defaults registered on v, unknown keys are
// ignored.
func FromViper(v *viper.Viper) (benchmark.Settings, error) {
	minTime, err := timefmt.ParseLenient(v.GetString(KeyMinExecutionTime))
	if err != nil {
		return benchmark.Settings{}, fmt.Errorf("%s: %w", KeyMinExecutionTime, err)
	}

	doc := document{
		MinReplications:      v.GetInt(KeyMinReplications),
		MaxReplications:      v.GetInt(KeyMaxReplications),
		MinExecutionTime:     timefmt.Duration(minTime),
		SpikeDetection:       v.GetBool(KeySpikeDetection),
		SpikeDetectionFactor: v.GetFloat64(KeySpikeDetectionFactor),
		WarmUpRuns:           v.GetInt(KeyWarmUpRuns),
		Verbosity:            v.GetInt(KeyVerbosity),
	}
	if err := validateDocument(doc); err != nil {
		return benchmark.Settings{}, err
	}
	return doc.settings(), nil
}

// Validate checks s the same way documents are checked on load.
func Validate(s benchmark.Settings) error {
	return validateDocument(toDocument(s))
}

func validateDocument(doc document) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must be >= %s, got: %v", fe.Field(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(msgs, "\n  "))
}

// FormatFromPath returns the document format implied by the file extension.
func FormatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "json"
	}
	return ext
}
