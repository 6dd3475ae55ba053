package codec

import (
	"strconv"
	"strings"

	"sndconvert/internal/tags"
)

// Invocation is one external tool command line. Arguments marked as values
// (paths, tag text) are quoted when the invocation is rendered for logs; the
// process itself always receives them as separate argv entries.
type Invocation struct {
	Binary string
	Args   []string
	// Output is the file the command writes, empty for commands that write
	// to standard output.
	Output string
	values map[int]bool
}

func newInvocation(binary string) Invocation {
	return Invocation{Binary: binary, values: map[int]bool{}}
}

func (inv *Invocation) flag(args ...string) {
	inv.Args = append(inv.Args, args...)
}

func (inv *Invocation) value(v string) {
	if inv.values == nil {
		inv.values = map[int]bool{}
	}
	inv.values[len(inv.Args)] = true
	inv.Args = append(inv.Args, v)
}

func (inv *Invocation) tagArgs(args []tags.Arg) {
	for _, arg := range args {
		inv.flag(arg.Flag)
		inv.value(arg.Value)
	}
}

// String renders the invocation as a shell-style command line.
func (inv Invocation) String() string {
	parts := make([]string, 0, len(inv.Args)+1)
	parts = append(parts, inv.Binary)
	for i, arg := range inv.Args {
		if inv.values[i] {
			parts = append(parts, strconv.Quote(arg))
			continue
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// IsZero reports whether the invocation names no binary.
func (inv Invocation) IsZero() bool {
	return inv.Binary == ""
}
