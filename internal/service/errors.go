package service

import "errors"

var (
	// ErrDuplicateUser is returned when a signup reuses an existing username.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials is returned on login with an unknown username
	// or wrong password.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrUnauthenticated is returned when a token is missing, malformed,
	// expired, or names a user that no longer exists.
	ErrUnauthenticated = errors.New("could not validate credentials")

	// ErrTooManyFiles rejects uploads above the per-request file limit.
	ErrTooManyFiles = errors.New("too many files to upload")

	// ErrNoFiles rejects uploads with an empty file list.
	ErrNoFiles = errors.New("no files to upload")
)
