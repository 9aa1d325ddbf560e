package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("Not Found")

	// InvalidArgument is returned when a caller breaks an input contract,
	// e.g. a structurally malformed ticket.
	InvalidArgument = ErrorKind("Invalid Argument")

	// Conflict is returned when an item can't be created because an
	// equivalent item already exists.
	Conflict = ErrorKind("Conflict")

	// Unsupported is returned for unsupported configurations.
	Unsupported = ErrorKind("Unsupported")

	// StorageUnavailable is returned when the backing store can't be
	// reached or a write fails. Retry policy belongs to the caller.
	StorageUnavailable = ErrorKind("Storage Unavailable")

	// InternalError is returned for broken internal invariants.
	InternalError = ErrorKind("Internal Error")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
