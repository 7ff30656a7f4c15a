// Package timefmt converts durations to and from the clock-style text form
// HH:MM:SS.fffffffff used in settings documents and diagnostic output.
package timefmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// MaxPrecision is the number of fractional digits needed for nanosecond resolution.
const MaxPrecision = 9

// ErrSyntax is returned (wrapped in a *ParseError) for text that is not a clock duration.
var ErrSyntax = errors.New("invalid clock duration")

// ParseError describes why a duration text was rejected.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("timefmt: parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrSyntax }

var pow10 = [...]uint64{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000}

// Format renders d as HH:MM:SS.mmmuuunnn.
func Format(d time.Duration) string {
	return FormatPrecision(d, MaxPrecision)
}

// FormatMicro renders d as HH:MM:SS.mmmuuu, dropping sub-microsecond digits.
func FormatMicro(d time.Duration) string {
	return FormatPrecision(d, 6)
}

// FormatPrecision renders d with the given number of fractional second digits
// (clamped to 0..9). Digits beyond the precision are truncated, not rounded.
func FormatPrecision(d time.Duration, digits int) string {
	digits = min(max(digits, 0), MaxPrecision)

	var b strings.Builder
	// Work on the magnitude as uint64 so math.MinInt64 does not overflow.
	n := uint64(d)
	if d < 0 {
		b.WriteByte('-')
		n = uint64(-(d + 1)) + 1
	}

	const nsPerSec = uint64(time.Second)
	secs := n / nsPerSec
	frac := n % nsPerSec

	fmt.Fprintf(&b, "%02d:%02d:%02d", secs/3600, secs/60%60, secs%60)
	if digits > 0 {
		frac /= pow10[MaxPrecision-digits]
		fmt.Fprintf(&b, ".%0*d", digits, frac)
	}
	return b.String()
}

// Parse reads a duration written as [-]H:MM:SS[.fraction]. The fraction is a
// decimal fraction of a second with at most nine digits, so "00:00:01.5" is
// one and a half seconds and "00:00:05.000" is five seconds.
func Parse(s string) (time.Duration, error) {
	fail := func(reason string) (time.Duration, error) {
		return 0, &ParseError{Input: s, Reason: reason}
	}

	text := strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(text, "-") {
		neg = true
		text = text[1:]
	}
	if text == "" {
		return fail("empty")
	}

	clock, frac, hasFrac := strings.Cut(text, ".")
	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return fail("want hours:minutes:seconds")
	}

	hours, err := parseDigits(parts[0])
	if err != nil {
		return fail("hours " + err.Error())
	}
	minutes, err := parseDigits(parts[1])
	if err != nil {
		return fail("minutes " + err.Error())
	}
	seconds, err := parseDigits(parts[2])
	if err != nil {
		return fail("seconds " + err.Error())
	}
	if minutes >= 60 {
		return fail("minutes out of range")
	}
	if seconds >= 60 {
		return fail("seconds out of range")
	}

	var nanos uint64
	if hasFrac {
		if len(frac) == 0 || len(frac) > MaxPrecision {
			return fail("fraction must have 1 to 9 digits")
		}
		f, err := parseDigits(frac)
		if err != nil {
			return fail("fraction " + err.Error())
		}
		nanos = f * pow10[MaxPrecision-len(frac)]
	}

	const limit = uint64(math.MaxInt64)
	if hours > limit/uint64(time.Hour) {
		return fail("out of range")
	}
	total := hours*uint64(time.Hour) + minutes*uint64(time.Minute) + seconds*uint64(time.Second)
	if total > limit-nanos {
		// A negative value may reach one nanosecond further than a positive one.
		if !(neg && total+nanos == limit+1) {
			return fail("out of range")
		}
	}
	total += nanos

	if neg && total > 0 {
		return time.Duration(-int64(total-1) - 1), nil
	}
	return time.Duration(total), nil
}

// ParseLenient accepts either the clock form understood by Parse or any text
// accepted by time.ParseDuration ("250ms", "1m30s").
func ParseLenient(s string) (time.Duration, error) {
	if strings.Contains(s, ":") {
		return Parse(s)
	}
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, &ParseError{Input: s, Reason: err.Error()}
	}
	return d, nil
}

func parseDigits(s string) (uint64, error) {
	if s == "" {
		return 0, errors.New("missing")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("has non-digit %q", s[i])
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.New("out of range")
	}
	return v, nil
}
