package glmesh

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps one of these so
// callers can branch with errors.Is.
var (
	// ErrInvalidParameter is returned when an argument is outside of its
	// valid range, i.e: a non-positive stack count or radius.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDomain is returned when an otherwise valid request falls outside
	// of the data it operates on, i.e: reading past the end of an orbit table.
	ErrDomain = errors.New("domain error")
)

// Error describes a failed operation. Kind is one of ErrInvalidParameter or ErrDomain.
type Error struct {
	Kind error
	// Op is the name of the exported function or method that failed,
	// i.e: "SphereIndices" or "OrbitCursor.At".
	Op  string
	Msg string
}

func (e *Error) Error() string {
	return "glmesh." + e.Op + ": " + e.Kind.Error() + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Kind }

func invalidParam(op, format string, args ...interface{}) error {
	return &Error{Kind: ErrInvalidParameter, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func domainErr(op, format string, args ...interface{}) error {
	return &Error{Kind: ErrDomain, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// withOp reports err as raised by op. Errors of other types pass through.
func withOp(op string, err error) error {
	if e, ok := err.(*Error); ok && e.Op != op {
		cp := *e
		cp.Op = op
		return &cp
	}
	return err
}
