package adapter

import "errors"

var (
	// ErrMailRejected is returned when the mail function answers with a
	// non-2xx status. The dispatcher treats it as a hard failure for the
	// recipient being mailed.
	ErrMailRejected = errors.New("mail function rejected message")

	// ErrMailUnavailable is returned when the mail function cannot be
	// reached at all.
	ErrMailUnavailable = errors.New("mail function unavailable")

	// ErrMediaUpload is returned when writing an object to the media store
	// fails.
	ErrMediaUpload = errors.New("media upload failed")
)
