package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is reported by a Store when the addressed document does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports a malformed entity. It is raised before any store call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// AccessDeniedError reports a mutation refused by the access policy.
type AccessDeniedError struct {
	PrincipalID string
	Action      string
	ResourceID  string
}

func (e *AccessDeniedError) Error() string {
	who := e.PrincipalID
	if who == "" {
		who = "anonymous"
	}
	if e.ResourceID == "" {
		return fmt.Sprintf("access denied: %s may not %s", who, e.Action)
	}
	return fmt.Sprintf("access denied: %s may not %s %s", who, e.Action, e.ResourceID)
}

// StoreError wraps a failure surfaced by the store. The cause is not interpreted.
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// CycleDetectedError reports a category whose parent chain loops back on itself.
type CycleDetectedError struct {
	CategoryID string
	Chain      []string
}

func (e *CycleDetectedError) Error() string {
	return fmt.Sprintf("category %s: parent chain forms a cycle (%s)", e.CategoryID, strings.Join(e.Chain, " -> "))
}

// storeError wraps err as a *StoreError unless it already is one.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Cause: err}
}

// IsNotFound reports whether err, or anything it wraps, is ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
