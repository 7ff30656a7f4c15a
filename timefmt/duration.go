package timefmt

import (
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that serializes as clock text in JSON and YAML
// documents. Decoding accepts both the clock form and Go duration strings.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return Format(time.Duration(d)) }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(Format(time.Duration(d))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := ParseLenient(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML writes the duration as a plain clock-text scalar.
func (d Duration) MarshalYAML() (any, error) {
	return Format(time.Duration(d)), nil
}

// UnmarshalYAML reads a clock-text or Go duration scalar.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}
