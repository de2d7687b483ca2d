package codec

import (
	"errors"
	"fmt"
)

// Kind classifies why a decode or encode call failed.
type Kind int

const (
	MalformedURI Kind = iota + 1
	BadScheme
	MissingHost
	MissingPort
	MissingField
	UnknownVariant
	InvalidBase64
	InvalidDocument
	SerializationError
)

var kindNames = map[Kind]string{
	MalformedURI:       "malformed uri",
	BadScheme:          "bad scheme",
	MissingHost:        "missing host",
	MissingPort:        "missing port",
	MissingField:       "missing field",
	UnknownVariant:     "unknown variant",
	InvalidBase64:      "invalid base64",
	InvalidDocument:    "invalid document",
	SerializationError: "serialization error",
}

func (k Kind) String() string {
	if k == 0 {
		return "unclassified"
	}
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinels for errors.Is matching on the kind alone.
var (
	ErrMalformedURI       = &Error{Kind: MalformedURI}
	ErrBadScheme          = &Error{Kind: BadScheme}
	ErrMissingHost        = &Error{Kind: MissingHost}
	ErrMissingPort        = &Error{Kind: MissingPort}
	ErrMissingField       = &Error{Kind: MissingField}
	ErrUnknownVariant     = &Error{Kind: UnknownVariant}
	ErrInvalidBase64      = &Error{Kind: InvalidBase64}
	ErrInvalidDocument    = &Error{Kind: InvalidDocument}
	ErrSerializationError = &Error{Kind: SerializationError}
)

// Error is returned by every codec in this module.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // underlying diagnostic, may be nil
}

func (e *Error) Error() string {
	switch {
	case e.Msg == "" && e.Err == nil:
		return e.Kind.String()
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	case e.Msg == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports a match when target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the kind carried by err, or 0 if err is not a codec error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Document reports err as an InvalidDocument error, wrapping it unless it
// already is one.
func Document(err error) error {
	if e, ok := err.(*Error); ok && e.Kind == InvalidDocument {
		return e
	}
	return Wrap(InvalidDocument, "", err)
}
