// Package etag generates HTTP entity tags for raw content or for file metadata. Tags
// are produced either in strong form ("<opaque>") which asserts byte-for-byte equality
// or in weak form (W/"<opaque>") which only asserts semantic equivalence.
//
// Generation is a pure function of its input and mode: it performs no I/O, holds no
// shared state, and is safe to call from any number of goroutines.
package etag

import (
	"fmt"
	"reflect"
	"strings"
)

const weakPrefix = "W/"

// Tag is an entity tag suitable for use verbatim as the value of an ETag header.
type Tag string

func (t Tag) String() string {
	return string(t)
}

// IsWeak returns true if the tag carries the W/ weak validator prefix.
func (t Tag) IsWeak() bool {
	return strings.HasPrefix(string(t), weakPrefix)
}

// Opaque returns the tag without the weak prefix and surrounding quotes.
func (t Tag) Opaque() string {
	s := strings.TrimPrefix(string(t), weakPrefix)
	return strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
}

func quote(opaque string, weak bool) Tag {
	if weak {
		return Tag(weakPrefix + `"` + opaque + `"`)
	}
	return Tag(`"` + opaque + `"`)
}

// Generate computes the entity tag for a []byte, a string, or a Stat. When no mode is
// specified, content produces a strong tag and stats produce a weak tag since file
// metadata is only an approximation of content equality.
func Generate(entity any, opts ...Option) (Tag, error) {
	if entity == nil {
		return "", ErrMissingEntity
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch e := entity.(type) {
	case []byte:
		return FromBytes(e, o.mode), nil
	case string:
		return FromString(e, o.mode), nil
	case Stat:
		if isNil(e) {
			return "", ErrMissingEntity
		}
		return FromStat(e, o.mode), nil
	}

	// Named content types such as json.RawMessage are tagged by their underlying bytes.
	v := reflect.ValueOf(entity)
	switch {
	case v.Kind() == reflect.String:
		return FromString(v.String(), o.mode), nil
	case v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8:
		return FromBytes(v.Bytes(), o.mode), nil
	case isNil(entity):
		return "", ErrMissingEntity
	default:
		return "", fmt.Errorf("%w: got %T", ErrInvalidEntityType, entity)
	}
}

// isNil reports whether v holds a typed nil, e.g. a nil *os.fileStat in an os.FileInfo.
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// FromBytes returns the tag of the content; Auto resolves to Strong.
func FromBytes(data []byte, mode Mode) Tag {
	if mode.resolve(Strong) == Weak {
		return quote(weakHash(data), true)
	}
	return quote(strongHash(data), false)
}

// FromString returns the tag of the UTF-8 bytes of s; Auto resolves to Strong.
func FromString(s string, mode Mode) Tag {
	return FromBytes([]byte(s), mode)
}

// FromStat returns the tag derived from file metadata; Auto resolves to Weak. Forcing
// Strong only changes the format of the tag, the payload is the same metadata digest.
func FromStat(st Stat, mode Mode) Tag {
	return quote(statHash(st), mode.resolve(Weak) == Weak)
}
