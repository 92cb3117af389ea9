package api

import "errors"

// Kind classifies an adapter error by where the failure happened.
type Kind int

const (
	// KindServer: the server responded with a non-2xx status. Message comes
	// from the response body when it carries one.
	KindServer Kind = iota

	// KindNetwork: the request was sent but no response arrived (connection
	// refused, DNS failure, timeout). Status is always 0.
	KindNetwork

	// KindClient: the request never left this process (bad base URL,
	// unencodable body, unexpected response shape). Status is always 0.
	KindClient

	// KindValidation: a client-side required-field check failed before any
	// network activity.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	case KindClient:
		return "client"
	case KindValidation:
		return "validation"
	}
	return "unknown"
}

// Error is the uniform error shape every adapter call returns. Resource
// services and controllers propagate it unchanged; match with errors.As.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Code    string
}

func (e *Error) Error() string {
	return e.Message
}

// AsError extracts an *Error from err, if any.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is a server error with status 401.
// The adapter has already cleared the session by the time a caller sees it.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == KindServer && apiErr.Status == 401
}

// ErrorMessage returns the user-facing message for err: the classified
// message when err is an *Error, err.Error() otherwise.
func ErrorMessage(err error) string {
	if apiErr, ok := AsError(err); ok {
		return apiErr.Message
	}
	return err.Error()
}
