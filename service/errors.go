package service

import "errors"

// Every lifecycle failure wraps one of these sentinels so handlers can map
// them to HTTP codes without string matching. Store errors pass through
// unwrapped and surface as internal errors.
var (
	// ErrInvalidReference marks an unknown order/item/table/menu item id.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrPreconditionFailed marks a valid transition blocked by state of a
	// collaborator (occupied table, unserved items at payment).
	ErrPreconditionFailed = errors.New("precondition failed")
	// ErrInvalidState marks a transition not present in the status tables.
	ErrInvalidState = errors.New("invalid state")
	// ErrNotFound is returned by read-only queries for missing records.
	ErrNotFound = errors.New("not found")
)
