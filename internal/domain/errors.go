package domain

import "errors"

// Sentinel errors for catalog loading
var (
	// ErrFetchFailed indicates a network or transport error, including non-2xx responses
	ErrFetchFailed = errors.New("catalog fetch failed")

	// ErrParseFailed indicates the response body did not match the expected schema
	ErrParseFailed = errors.New("catalog payload is invalid")
)

// Resource names a data source endpoint
type Resource string

const (
	ResourceProducts   Resource = "products"
	ResourceCategories Resource = "categories"
)

// SourceError records which request failed. It unwraps to the underlying
// cause, which in turn wraps ErrFetchFailed or ErrParseFailed.
type SourceError struct {
	Resource Resource
	Err      error
}

func (e *SourceError) Error() string {
	return "loading " + string(e.Resource) + ": " + e.Err.Error()
}

func (e *SourceError) Unwrap() error { return e.Err }
