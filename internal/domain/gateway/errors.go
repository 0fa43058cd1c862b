package gateway

// RejectionError is a validation rejection from the commerce API. Reason is
// the server's message verbatim, surfaced to the user unchanged.
type RejectionError struct {
	Reason string
}

// Error implements the error interface.
func (e *RejectionError) Error() string {
	return e.Reason
}
