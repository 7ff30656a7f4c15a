package timefmt

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "00:00:00.000000000"},
		{"millis", 100 * time.Millisecond, "00:00:00.100000000"},
		{"mixed", time.Hour + 2*time.Minute + 3*time.Second + 4*time.Millisecond + 5*time.Microsecond + 6, "01:02:03.004005006"},
		{"many hours", 123 * time.Hour, "123:00:00.000000000"},
		{"negative", -1500 * time.Millisecond, "-00:00:01.500000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestFormatPrecision(t *testing.T) {
	d := 5*time.Second + 123456789

	assert.Equal(t, "00:00:05", FormatPrecision(d, 0))
	assert.Equal(t, "00:00:05.123", FormatPrecision(d, 3))
	assert.Equal(t, "00:00:05.123456", FormatMicro(d))
	assert.Equal(t, "00:00:05.123456789", FormatPrecision(d, 42))
	assert.Equal(t, "00:00:05", FormatPrecision(d, -1))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"00:00:05.000", 5 * time.Second},
		{"00:00:01.000000000", time.Second},
		{"00:00:01.5", 1500 * time.Millisecond},
		{"00:00:00.000001", time.Microsecond},
		{"01:02:03", time.Hour + 2*time.Minute + 3*time.Second},
		{"100:00:00.000000001", 100*time.Hour + 1},
		{" 00:00:02.25 ", 2250 * time.Millisecond},
		{"-00:00:00.100", -100 * time.Millisecond},
		{"-00:00:00", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"-",
		"5",
		"00:05",
		"00:00:00:00",
		"aa:00:00",
		"00:60:00",
		"00:00:60",
		"00:00:01.",
		"00:00:01.1234567890",
		"00:00:01.12a",
		"+1:00:00",
		"99999999999:00:00",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSyntax), "want ErrSyntax, got %v", err)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, in, pe.Input)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	values := []time.Duration{
		0,
		1,
		999,
		time.Microsecond,
		100 * time.Millisecond,
		time.Second,
		59*time.Minute + 59*time.Second + 999999999,
		1234*time.Hour + 5*time.Minute + 6*time.Second + 7,
		-42 * time.Millisecond,
		math.MaxInt64,
		math.MinInt64,
	}
	for _, d := range values {
		got, err := Parse(Format(d))
		require.NoError(t, err, "parse %s", Format(d))
		assert.Equal(t, d, got)

		micro, err := Parse(FormatMicro(d))
		require.NoError(t, err)
		if d >= 0 {
			assert.Equal(t, d.Truncate(time.Microsecond), micro)
		}
	}
}

func TestParseLenient(t *testing.T) {
	d, err := ParseLenient("250ms")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)

	d, err = ParseLenient("00:00:03.000")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, d)

	_, err = ParseLenient("soon")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestDurationJSON(t *testing.T) {
	type doc struct {
		Limit Duration `json:"limit"`
	}

	b, err := json.Marshal(doc{Limit: Duration(1500 * time.Millisecond)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"limit":"00:00:01.500000000"}`, string(b))

	var back doc
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, 1500*time.Millisecond, back.Limit.Std())

	require.NoError(t, json.Unmarshal([]byte(`{"limit":"2s"}`), &back))
	assert.Equal(t, 2*time.Second, back.Limit.Std())

	assert.Error(t, json.Unmarshal([]byte(`{"limit":"00:99:00"}`), &back))
}

func TestDurationYAML(t *testing.T) {
	type doc struct {
		Limit Duration `yaml:"limit"`
	}

	b, err := yaml.Marshal(doc{Limit: Duration(time.Minute)})
	require.NoError(t, err)
	assert.Contains(t, string(b), "00:01:00.000000000")

	var back doc
	require.NoError(t, yaml.Unmarshal(b, &back))
	assert.Equal(t, time.Minute, back.Limit.Std())

	require.NoError(t, yaml.Unmarshal([]byte("limit: 00:00:05.000\n"), &back))
	assert.Equal(t, 5*time.Second, back.Limit.Std())
}
