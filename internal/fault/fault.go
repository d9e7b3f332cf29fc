package fault

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	// KindConfig marks errors detectable before any backend or tool call:
	// missing credentials, a single item exceeding the batch budget, an
	// unresolvable track selector.
	KindConfig Kind = iota
	// KindTransport marks failures of an external collaborator: a dead
	// child process, a non-2xx HTTP response, a failed probe or extract.
	// Never retried; a partially consumed pipe cannot be resumed.
	KindTransport
	// KindParse marks unparseable backend output. Only the clipboard
	// backend treats it as recoverable.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "Config"
	case KindTransport:
		return "Transport"
	case KindParse:
		return "Parse"
	default:
		return "Unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Context map[string]any
	Cause   error
}

func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Context: make(map[string]any),
	}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

func Wrap(err error, kind Kind, message string) *Error {
	e := New(kind, message)
	e.Cause = err
	return e
}

func (e *Error) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("[%s] %s", e.Kind.String(), e.Message))

	if len(e.Context) > 0 {
		var ctxParts []string
		for k, v := range e.Context {
			ctxParts = append(ctxParts, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("context: %s", strings.Join(ctxParts, ", ")))
	}

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause: %v", e.Cause))
	}

	return strings.Join(parts, " | ")
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) WithContext(key string, value any) *Error {
	e.Context[key] = value
	return e
}

func IsKind(err error, kind Kind) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}

func IsConfig(err error) bool    { return IsKind(err, KindConfig) }
func IsTransport(err error) bool { return IsKind(err, KindTransport) }
func IsParse(err error) bool     { return IsKind(err, KindParse) }
