package etag

import "fmt"

// Mode selects between strong and weak tag generation.
type Mode uint8

const (
	Auto Mode = iota
	Strong
	Weak
)

var modeNames = [3]string{"auto", "strong", "weak"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return modeNames[0]
}

// ParseMode returns the mode for its name; the empty string is Auto.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "auto":
		return Auto, nil
	case "strong":
		return Strong, nil
	case "weak":
		return Weak, nil
	default:
		return Auto, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// resolve replaces Auto (or any unknown value) with the default for the entity kind.
func (m Mode) resolve(def Mode) Mode {
	if m == Strong || m == Weak {
		return m
	}
	return def
}

// Option configures a single call to Generate.
type Option func(*options)

type options struct {
	mode Mode
}

// WithWeak forces weak (true) or strong (false) generation.
func WithWeak(weak bool) Option {
	return func(o *options) {
		if weak {
			o.mode = Weak
		} else {
			o.mode = Strong
		}
	}
}

// WithMode sets the mode directly; Auto restores the per-entity default.
func WithMode(mode Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}
