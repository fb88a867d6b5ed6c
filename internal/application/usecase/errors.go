package usecase

import (
	"errors"
	"fmt"

	"github.com/bnema/tiler/internal/domain/entity"
)

// ErrPreconditionFailed is wrapped by every PreconditionFailedError.
var ErrPreconditionFailed = errors.New("precondition failed")

// Operation names reported in diagnostics.
const (
	OpAddTile       = "add_tile"
	OpCloseTile     = "close_tile"
	OpFocusTile     = "focus_tile"
	OpSplitTile     = "split_tile"
	OpAdjustRatio   = "adjust_ratio"
	OpToggleLayout  = "toggle_layout"
	OpFocusNext     = "focus_next"
	OpFocusPrevious = "focus_previous"
)

// PreconditionFailedError reports an operation that was skipped because its
// target did not resolve. The tree returned alongside it is unmodified.
type PreconditionFailedError struct {
	Operation string
	ID        entity.NodeID
	Reason    string
}

func (e *PreconditionFailedError) Error() string {
	if e.ID == entity.NoNode {
		return fmt.Sprintf("%s: %s: %s", e.Operation, ErrPreconditionFailed, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s: %s", e.Operation, e.ID, ErrPreconditionFailed, e.Reason)
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

func preconditionFailed(op string, id entity.NodeID, reason string) error {
	return &PreconditionFailedError{Operation: op, ID: id, Reason: reason}
}
