package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrorKind classifies a hex color parse failure
type ErrorKind uint8

const (
	ErrKindSize    ErrorKind = iota + 1 // length is not 6 (7 with '#')
	ErrKindInvalid                      // non-ASCII content
	ErrKindFormat                       // a channel is not a valid hex byte
)

// Sentinels matched by ParseError.Is
var (
	ErrSize    = errors.New("color must be 6 hex digits (7 with '#')")
	ErrInvalid = errors.New("color contains non-ASCII characters")
	ErrFormat  = errors.New("invalid hex digit in color")
)

var channelNames = [3]string{"red", "green", "blue"}

// ParseError reports why a color string was rejected.
// For ErrKindFormat, Channel is the failing position (0=red, 1=green, 2=blue)
// and Err is the underlying *strconv.NumError.
type ParseError struct {
	Kind    ErrorKind
	Input   string
	Channel int
	Err     error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrKindSize:
		return fmt.Sprintf("parse color %q: %v", e.Input, ErrSize)
	case ErrKindInvalid:
		return fmt.Sprintf("parse color %q: %v", e.Input, ErrInvalid)
	default:
		return fmt.Sprintf("parse color %q: %s channel (position %d): %v",
			e.Input, channelNames[e.Channel], e.Channel, e.Err)
	}
}

// Unwrap exposes the numeric parse failure for format errors
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the kind sentinels
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrSize:
		return e.Kind == ErrKindSize
	case ErrInvalid:
		return e.Kind == ErrKindInvalid
	case ErrFormat:
		return e.Kind == ErrKindFormat
	}
	return false
}

// ParseHex parses "rrggbb" or "#rrggbb", hex digits in either case
func ParseHex(s string) (RGB, error) {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return RGB{}, &ParseError{Kind: ErrKindInvalid, Input: s}
		}
	}

	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return RGB{}, &ParseError{Kind: ErrKindSize, Input: s}
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, &ParseError{Kind: ErrKindFormat, Input: s, Channel: i, Err: err}
		}
		ch[i] = uint8(v)
	}

	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParseHex is ParseHex for package-level literals; it panics on error
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColor accepts a hex color or a palette name such as "coral"
func ParseColor(s string) (RGB, error) {
	if c, ok := LookupNamed(s); ok {
		return c, nil
	}
	return ParseHex(s)
}
