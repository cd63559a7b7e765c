package analytics

import (
	"errors"
	"fmt"
)

// InvalidDateError reports a paint whose lastSoldDate could not be parsed.
type InvalidDateError struct {
	PaintID string
	Value   string
	Err     error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("paint %s: invalid lastSoldDate %q: %v", e.PaintID, e.Value, e.Err)
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}

var errEmptyDate = errors.New("empty date")

// InvalidDates flattens an error returned by DeadStock into its
// per-record failures.
func InvalidDates(err error) []*InvalidDateError {
	if err == nil {
		return nil
	}
	var out []*InvalidDateError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, InvalidDates(e)...)
		}
		return out
	}
	var ide *InvalidDateError
	if errors.As(err, &ide) {
		out = append(out, ide)
	}
	return out
}
