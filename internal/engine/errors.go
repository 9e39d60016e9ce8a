package engine

import "github.com/pkg/errors"

// Kind classifies a core-level failure so a host can map it to a
// transport-specific response without string matching (spec.md §7:
// "never transport-level error codes from the core").
type Kind int

const (
	KindUnknown Kind = iota
	KindUnknownItem
	KindUnknownContainer
	KindNoSpace
	KindUnplaceable
	KindInvalidInput
)

type coreError struct {
	kind Kind
	msg  string
}

func (e *coreError) Error() string { return e.msg }

func newError(kind Kind, msg string) error {
	return errors.WithStack(&coreError{kind: kind, msg: msg})
}

// KindOf extracts the Kind from an error produced by this package,
// unwrapping any github.com/pkg/errors stack annotation. Returns
// KindUnknown for errors this package did not originate.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var ce *coreError
	for {
		if c, ok := err.(*coreError); ok {
			ce = c
			break
		}
		cause := errors.Cause(err)
		if cause == err {
			break
		}
		err = cause
	}
	if ce == nil {
		return KindUnknown
	}
	return ce.kind
}

// ErrUnknownItem reports that an itemId is absent from the registry.
func ErrUnknownItem(id string) error {
	return newError(KindUnknownItem, "unknown item: "+id)
}

// ErrUnknownContainer reports that a containerId is absent from the registry.
func ErrUnknownContainer(id string) error {
	return newError(KindUnknownContainer, "unknown container: "+id)
}

// ErrNoSpace reports that a placement commit failed due to a space conflict.
func ErrNoSpace(itemID, containerID string) error {
	return newError(KindNoSpace, "no space for item "+itemID+" in container "+containerID)
}

// ErrUnplaceable reports that no container/orientation/anchor admits the item.
func ErrUnplaceable(itemID string) error {
	return newError(KindUnplaceable, "no placement found for item "+itemID)
}

// ErrInvalidInput reports a malformed or missing field.
func ErrInvalidInput(msg string) error {
	return newError(KindInvalidInput, "invalid input: "+msg)
}
