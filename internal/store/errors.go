package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrVaultNotFound is returned when a query or delete targets a vault that
	// does not exist or is not owned by the given user.
	ErrVaultNotFound = errors.New("vault was not found")

	// ErrEntryNotFound is returned when a query or delete targets a vault entry
	// that does not exist in the given vault.
	ErrEntryNotFound = errors.New("vault entry was not found")

	// ErrContactNotFound is returned when a query, update, or delete targets a
	// contact that does not exist or is not owned by the given user.
	ErrContactNotFound = errors.New("contact was not found")

	// ErrRecipientNotFound is returned when a delete targets a recipient link
	// that does not exist on the given vault.
	ErrRecipientNotFound = errors.New("recipient was not found")

	// ErrRecipientAlreadyLinked is returned when adding a recipient fails
	// because the contact is already linked to the vault.
	ErrRecipientAlreadyLinked = errors.New("recipient already linked to vault")

	// ErrAlreadyProcessedToday is returned when inserting a daily idempotency
	// marker finds an existing marker for the same user and UTC day. The
	// caller must treat the day's inactivity processing as already done.
	ErrAlreadyProcessedToday = errors.New("inactivity already processed today")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
