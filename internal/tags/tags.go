package tags

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Map holds the tags discovered in one file, keyed by lower-cased tag name.
// It is built fresh per file and treated as read-only afterwards.
type Map map[string]string

// Set normalizes and stores a tag. Blank keys and empty values are dropped.
func (m Map) Set(key, value string) {
	key = normalizeKey(key)
	if key == "" || value == "" {
		return
	}
	m[key] = norm.NFC.String(value)
}

// Lookup returns the first non-empty value among keys.
func (m Map) Lookup(keys ...string) (string, bool) {
	for _, key := range keys {
		if value, ok := m[key]; ok && value != "" {
			return value, true
		}
	}
	return "", false
}

func normalizeKey(key string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(key))
}

// Slot names one encoder tag position and the tag keys that may fill it, in
// precedence order.
type Slot struct {
	Name string
	Keys []string
}

// Slots is the fixed order tags are passed to encoders. The first present key
// wins; year and track fall back to date and tracknumber.
var Slots = []Slot{
	{Name: "artist", Keys: []string{"artist"}},
	{Name: "album", Keys: []string{"album"}},
	{Name: "year", Keys: []string{"year", "date"}},
	{Name: "track", Keys: []string{"track", "tracknumber"}},
	{Name: "title", Keys: []string{"title"}},
}

// Field is one resolved slot.
type Field struct {
	Slot  string
	Value string
}

// Fields resolves m into slot order, omitting slots with no matching tag.
func Fields(m Map) []Field {
	fields := make([]Field, 0, len(Slots))
	for _, slot := range Slots {
		if value, ok := m.Lookup(slot.Keys...); ok {
			fields = append(fields, Field{Slot: slot.Name, Value: value})
		}
	}
	return fields
}
