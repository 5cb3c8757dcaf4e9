package llmclient

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidConfigurationError indicates an unrecognized backend identifier,
// supplied explicitly at construction or reached through a corrupted
// configuration at dispatch.
type InvalidConfigurationError struct {
	Value   string   // The offending backend identifier
	Allowed []string // The valid identifiers
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid backend '%s', must be one of: %s",
		e.Value, strings.Join(e.Allowed, ", "))
}

// BackendUnavailableError indicates that the provider client for the resolved
// backend was never constructed. It is raised before any network attempt.
type BackendUnavailableError struct {
	Backend Backend // The backend that could not be used
	Reason  string  // Why the provider client is missing
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("backend '%s' unavailable: %s", e.Backend, e.Reason)
}

// BackendError wraps a failure reported by the remote provider itself
// (network, auth, rate limit, malformed response). The original error is
// preserved and reachable via Unwrap.
type BackendError struct {
	Backend Backend // The backend that produced the error
	Err     error   // Underlying provider error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend '%s' call failed: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// IsInvalidConfiguration checks if an error is an InvalidConfigurationError.
func IsInvalidConfiguration(err error) bool {
	var target *InvalidConfigurationError
	return errors.As(err, &target)
}

// IsBackendUnavailable checks if an error is a BackendUnavailableError.
func IsBackendUnavailable(err error) bool {
	var target *BackendUnavailableError
	return errors.As(err, &target)
}

// IsBackendError checks if an error is a BackendError.
func IsBackendError(err error) bool {
	var target *BackendError
	return errors.As(err, &target)
}
