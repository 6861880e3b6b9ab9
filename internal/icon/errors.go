package icon

import (
	"errors"
	"fmt"
)

// ErrIconLoad matches every LoadError through errors.Is.
var ErrIconLoad = errors.New("icon load failed")

type Reason int

const (
	ReasonMissing Reason = iota
	ReasonUnreadable
	ReasonUndecodable
)

func (r Reason) String() string {
	switch r {
	case ReasonMissing:
		return "missing"
	case ReasonUnreadable:
		return "unreadable"
	case ReasonUndecodable:
		return "undecodable"
	default:
		return "unknown"
	}
}

// LoadError describes why an icon file could not be turned into a window icon.
type LoadError struct {
	Path   string
	Reason Reason
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load icon %q (%s): %v", e.Path, e.Reason, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrIconLoad
}
