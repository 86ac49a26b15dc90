package format

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrInvalidArgument marks a caller programming error such as a nil
	// style or target type.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrItemFormat matches every *ItemFormatError via errors.Is.
	ErrItemFormat = errors.New("item format error")

	ErrNoFormatter           = errors.New("no formatter available")
	ErrNoParser              = errors.New("no parser available")
	ErrProviderNotRegistered = errors.New("no format provider registered")
	ErrTypeMismatch          = errors.New("value type mismatch")

	ErrDuplicateProvider = errors.New("duplicate format provider")
	ErrAlreadyBound      = errors.New("format provider already bound")
	ErrAmbiguousProvider = errors.New("ambiguous format provider")
	ErrUnknownProvider   = errors.New("unknown format provider")
)

// Handle kinds acquired from a provider.
const (
	HandleFormatter = "formatter"
	HandleParser    = "parser"
)

// ItemFormatError reports a failure to acquire a formatter or parser from
// the bound provider. Err is the underlying cause: ErrNoFormatter,
// ErrNoParser, ErrProviderNotRegistered, or whatever the provider
// returned.
type ItemFormatError struct {
	Handle string // HandleFormatter when empty
	Type   reflect.Type
	Style  *Style
	Err    error
}

func (e *ItemFormatError) Error() string {
	handle := e.Handle
	if handle == "" {
		handle = HandleFormatter
	}
	switch {
	case errors.Is(e.Err, ErrProviderNotRegistered):
		return fmt.Sprintf("%s: %s and %s", ErrProviderNotRegistered, e.Type, e.Style)
	case errors.Is(e.Err, ErrNoFormatter), errors.Is(e.Err, ErrNoParser):
		return fmt.Sprintf("no %s available for %s and %s", handle, e.Type, e.Style)
	default:
		return fmt.Sprintf("error accessing %s for %s and %s: %v", handle, e.Type, e.Style, e.Err)
	}
}

func (e *ItemFormatError) Unwrap() error { return e.Err }

// Is reports true for ErrItemFormat so callers can match the error kind
// without unpacking the struct.
func (e *ItemFormatError) Is(target error) bool { return target == ErrItemFormat }
