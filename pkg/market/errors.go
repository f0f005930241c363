package market

import (
	"errors"
	"fmt"
)

// FailureKind classifies why live data could not be used.
type FailureKind string

const (
	FailTransport FailureKind = "transport"   // network error, DNS, timeout
	FailStatus    FailureKind = "http_status" // non-success HTTP response
	FailParse     FailureKind = "parse"       // body could not be decoded
	FailShape     FailureKind = "shape"       // well-formed but empty or NaN
)

// ProviderError wraps a failed upstream call with its classification. The
// Loader converts every ProviderError into a fallback result; nothing above
// it ever observes one.
type ProviderError struct {
	Kind FailureKind
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("market: provider failure (%s)", e.Kind)
	}
	return fmt.Sprintf("market: provider failure (%s): %v", e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NewProviderError builds a classified provider error.
func NewProviderError(kind FailureKind, err error) *ProviderError {
	return &ProviderError{Kind: kind, Err: err}
}

// Classify extracts the failure kind carried by err. Unclassified errors are
// treated as transport failures.
func Classify(err error) FailureKind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return FailTransport
}
