package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrSequenceExhausted indicates a prefix counter past its last slot.
	// Retrying with the same prefix is meaningless.
	ErrSequenceExhausted = errors.New("sequence exhausted")
	// ErrIncompleteSelection indicates a compose call missing dimensions.
	ErrIncompleteSelection = errors.New("incomplete attribute selection")
	// ErrInvalidTransition indicates a lifecycle edge outside the table.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrStaleState indicates a transition validated against a superseded read.
	ErrStaleState = errors.New("stale job card state")
	// ErrAllocationConflict indicates a storage-level race detected post-hoc.
	ErrAllocationConflict = errors.New("allocation conflict")
	// ErrStorageUnavailable indicates a transient storage failure.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrNotFound indicates a missing record.
	ErrNotFound = errors.New("not found")
)

func SequenceExhaustedError(prefix string) error {
	return errors.Join(ErrSequenceExhausted, fmt.Errorf("prefix %q has no remaining suffixes", prefix))
}

func IncompleteSelectionError(missing []Dimension) error {
	parts := make([]string, 0, len(missing))
	for _, d := range missing {
		parts = append(parts, string(d))
	}
	return errors.Join(ErrIncompleteSelection, fmt.Errorf("missing dimensions: %s", strings.Join(parts, ", ")))
}

func InvalidTransitionError(from, to JobCardStatus) error {
	return errors.Join(ErrInvalidTransition, fmt.Errorf("cannot move job card from %s to %s", from, to))
}

func StaleStateError(expected, actual JobCardStatus) error {
	return errors.Join(ErrStaleState, fmt.Errorf("job card moved from %s to %s since it was read", expected, actual))
}

func AllocationConflictError(sku string) error {
	return errors.Join(ErrAllocationConflict, fmt.Errorf("identifier %s already written", sku))
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// failure (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.TrimSpace(pgErr.Code) == "23505"
	}
	return false
}

// IsForeignKeyViolation reports whether err is a Postgres referential
// integrity failure (SQLSTATE 23503).
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.TrimSpace(pgErr.Code) == "23503"
	}
	return false
}
