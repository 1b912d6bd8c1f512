package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// When all given errors are nil, nil is returned. When only a single non-nil
// error is given, it is returned unchanged. Otherwise the result groups all
// errors and can still be tested with the Is method of any root error that
// at least one member wraps.
func Append(errs ...error) error {
	var flat multiError
	for _, err := range errs {
		switch e := err.(type) {
		case nil:
			continue
		case multiError:
			flat = append(flat, e...)
		default:
			flat = append(flat, err)
		}
	}

	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return flat
	}
}

type multiError []error

func (e multiError) Error() string {
	switch len(e) {
	case 0:
		return "<nil>"
	case 1:
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(e), strings.Join(msgs, "\n\t"))
}

// contains returns true if any member of this group wraps given root error.
func (e multiError) contains(kind *Error) bool {
	for _, err := range e {
		if kind.Is(err) {
			return true
		}
	}
	return false
}
