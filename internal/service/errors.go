package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotVaultOwner is returned when a caller operates on a vault owned by
	// someone else. Handlers map it to 404, not 403, so probing requests
	// cannot distinguish "not yours" from "does not exist".
	ErrNotVaultOwner = errors.New("vault does not belong to user")

	// ErrNotContactOwner is returned when linking a recipient whose contact
	// record belongs to someone else.
	ErrNotContactOwner = errors.New("contact does not belong to user")

	ErrInvalidThreshold   = errors.New("inactivity threshold out of range")
	ErrInvalidEntryType   = errors.New("unknown entry type")
	ErrInvalidContactRole = errors.New("unknown contact role")

	// ErrShareLinkInvalid is returned for any share token that fails to
	// resolve: malformed, tampered, or pointing at a vault that no longer
	// exists. One error for all cases keeps the public endpoint from
	// leaking which part failed.
	ErrShareLinkInvalid = errors.New("share link is invalid")
)
