package tags

import (
	"strconv"
	"strings"
)

// FlagTable renders resolved fields as encoder arguments. Each slot maps to a
// flag; when Assign is set, the value is passed as FIELD=value behind that
// flag (flac's -T ARTIST=...).
type FlagTable struct {
	Flags  map[string]string
	Assign map[string]string
}

var (
	// LameFlags are lame's ID3 options.
	LameFlags = FlagTable{Flags: map[string]string{
		"artist": "--ta",
		"album":  "--tl",
		"year":   "--ty",
		"track":  "--tn",
		"title":  "--tt",
	}}
	// OggencFlags are oggenc's comment options.
	OggencFlags = FlagTable{Flags: map[string]string{
		"artist": "-a",
		"album":  "-l",
		"year":   "-d",
		"track":  "-N",
		"title":  "-t",
	}}
	// FlacFlags write Vorbis comments through flac's -T option.
	FlacFlags = FlagTable{
		Flags: map[string]string{
			"artist": "-T",
			"album":  "-T",
			"year":   "-T",
			"track":  "-T",
			"title":  "-T",
		},
		Assign: map[string]string{
			"artist": "ARTIST",
			"album":  "ALBUM",
			"year":   "DATE",
			"track":  "TRACKNUMBER",
			"title":  "TITLE",
		},
	}
)

// Arg is one rendered flag and its value.
type Arg struct {
	Flag  string
	Value string
}

// Render maps fields onto flags, skipping slots the table has no flag for.
func (t FlagTable) Render(fields []Field) []Arg {
	args := make([]Arg, 0, len(fields))
	for _, field := range fields {
		flag, ok := t.Flags[field.Slot]
		if !ok {
			continue
		}
		value := field.Value
		if name, ok := t.Assign[field.Slot]; ok {
			value = name + "=" + value
		}
		args = append(args, Arg{Flag: flag, Value: value})
	}
	return args
}

// Describe renders args the way they appear on a shell command line, with
// every value double-quoted: --ta "X" --tt "Y".
func Describe(args []Arg) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, arg.Flag+" "+strconv.Quote(arg.Value))
	}
	return strings.Join(parts, " ")
}
