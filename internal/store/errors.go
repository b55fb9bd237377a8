package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned by LoadSession when nobody is logged in.
	ErrSessionNotFound = errors.New("session not found")

	// ErrMetaNotFound is returned by GetMeta for keys that were never set.
	ErrMetaNotFound = errors.New("meta value not found")

	// ErrCorruptedEntity is returned when a cached row has an unparsable
	// entity key.
	ErrCorruptedEntity = errors.New("corrupted cached entity")

	// ErrCorruptedMutation is returned when a stored row cannot be turned
	// back into a mutation (e.g. an unparsable entity key).
	ErrCorruptedMutation = errors.New("corrupted pending mutation")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning a result row fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrBeginningTransaction is returned when the database refuses to
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when the final commit fails. The
	// transaction is considered rolled back at this point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")
)
