// Package keys derives cache keys from the arguments of a producer call.
package keys

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/hashstructure/v2"
)

// Key identifies one producer call. Two calls with structurally equal
// arguments get the same Key.
type Key string

// Of derives the key for a call with positional arguments only.
func Of(args ...any) Key {
	return OfNamed(args, nil)
}

/*
OfNamed derives the key for a call with positional and named arguments.

  - positional arguments are order sensitive
  - named arguments are sorted by name, so their order never matters
  - scalars are encoded literally, composite values by a structural hash

The function is total: a value the structural hasher rejects (funcs, channels)
falls back to its Go-syntax representation.
*/
func OfNamed(args []any, named map[string]any) Key {
	var b strings.Builder
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(part(a))
	}
	b.WriteByte(')')

	if len(named) > 0 {
		names := make([]string, 0, len(named))
		for n := range named {
			names = append(names, n)
		}
		sort.Strings(names)

		b.WriteByte('{')
		for i, n := range names {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(n))
			b.WriteByte('=')
			b.WriteString(part(named[n]))
		}
		b.WriteByte('}')
	}
	return Key(b.String())
}

func part(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(x)
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprintf("%T(%v)", x, x)
	}

	h, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		return fmt.Sprintf("%T(%#v)", v, v)
	}
	return fmt.Sprintf("%T#%016x", v, h)
}
