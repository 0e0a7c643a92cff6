// Package normalize turns loosely typed record store rows into domain entities.
package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
)

// Field lists the accepted source keys of one logical field, in priority order.
type Field []string

// record wraps a row with alias-aware accessors.
type record model.Row

// lookup returns the first present value among the field's aliases.
// Empty strings, zero numbers, false and null count as absent.
func (r record) lookup(f Field) (any, bool) {
	for _, key := range f {
		if v, ok := r[key]; ok && present(v) {
			return v, true
		}
	}
	return nil, false
}

// Has reports whether any alias carries a value.
func (r record) Has(f Field) bool {
	_, ok := r.lookup(f)
	return ok
}

// Defines reports whether any alias column exists in the row, even blank.
func (r record) Defines(f Field) bool {
	for _, key := range f {
		if _, ok := r[key]; ok {
			return true
		}
	}
	return false
}

// Text returns the field as a trimmed string.
func (r record) Text(f Field) string {
	v, ok := r.lookup(f)
	if !ok {
		return ""
	}
	return strings.TrimSpace(stringify(v))
}

// TextOr returns the field or def when it is absent.
func (r record) TextOr(f Field, def string) string {
	if s := r.Text(f); s != "" {
		return s
	}
	return def
}

// Phone returns the field with the spreadsheet text marker removed.
func (r record) Phone(f Field) string {
	return CleanPhone(r.Text(f))
}

// Number parses the field after removing whitespace, 0 on failure.
func (r record) Number(f Field) float64 {
	return ParseNumber(r.Text(f))
}

// CleanPhone strips one leading apostrophe.
func CleanPhone(phone string) string {
	return strings.TrimSpace(strings.TrimPrefix(phone, "'"))
}

// ParseNumber parses the leading numeric part of s with all whitespace removed.
func ParseNumber(s string) float64 {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	prefix := numericPrefix(s)
	if prefix == "" {
		return 0
	}
	n, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return n
}

func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			frac++
		}
		if frac > 0 || digits > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '-' || s[j] == '+') {
			j++
		}
		exp := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}
	return strings.TrimSuffix(s[:i], ".")
}

func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case float64:
		return val != 0
	case int:
		return val != 0
	case int64:
		return val != 0
	default:
		return true
	}
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
