// Package dateutil converts user-friendly date formats and date values
// found in component data and page metadata.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// ErrInvalidDate indicates a value that cannot be read as a date.
var ErrInvalidDate = errors.New("invalid date")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when no format is given.
const DefaultDateFormat = "iso"

// dateTokens maps user-friendly tokens to Go layout components.
// Longer tokens come first so matching is greedy. Tokens are case-sensitive:
// "MM" is the month, "mm" the minute.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"datetime": "YYYY-MM-DD HH:mm",
}

// Layout converts a preset name or token format to a Go time layout.
// Presets are matched case-insensitively. Text in brackets is kept literally:
// "[Updated] D MMM" gives "Updated 2 Jan". Other characters pass through.
func Layout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}

	var b strings.Builder
	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}
		if tok, layout, ok := matchToken(format[i:]); ok {
			b.WriteString(layout)
			i += len(tok)
			continue
		}
		b.WriteByte(format[i])
		i++
	}
	return b.String(), nil
}

func matchToken(s string) (token, layout string, ok bool) {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			return t.token, t.goFmt, true
		}
	}
	return "", "", false
}

// Format renders t with a preset or token format.
// A zero time renders as the empty string.
func Format(t time.Time, format string) (string, error) {
	if format == "" {
		format = DefaultDateFormat
	}
	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	if t.IsZero() {
		return "", nil
	}
	return t.Format(layout), nil
}

// valueLayouts are tried in order when reading a date from a string.
var valueLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

// Parse reads a date from a data value: a time.Time, or a string in
// RFC 3339 or ISO date form ("2024-03-01", "2024-03-01 10:30").
func Parse(v any) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return val, nil
	case *time.Time:
		if val == nil {
			return time.Time{}, nil
		}
		return *val, nil
	case string:
		s := strings.TrimSpace(val)
		for _, layout := range valueLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, val)
	case nil:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, v)
	}
}
