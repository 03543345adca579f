package azure

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents a failed az CLI invocation. It carries the raw stderr so
// fatal failures can be surfaced to the operator unmodified.
type Error struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *Error) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = fmt.Sprintf("exit code %d", e.ExitCode)
	}
	return fmt.Sprintf("az %s: %s", e.Command, msg)
}

// nameTakenMarkers identify a site name owned elsewhere. The hostname
// namespace is global, so this is distinct from a plain conflict inside
// the operator's own subscription. Checked before alreadyExistsMarkers
// because the provider phrases it with "already exists" too.
var nameTakenMarkers = []string{
	"website with given name",
	"name is already taken",
	"is not available",
}

var alreadyExistsMarkers = []string{
	"already exists",
	"conflict",
}

var notLoggedInMarkers = []string{
	"az login",
	"no subscriptions found",
	"please run 'az login'",
	"interactive authentication is needed",
}

// IsNameTaken reports whether the error indicates the requested globally
// unique app name is taken by another subscription.
func IsNameTaken(err error) bool {
	return stderrContains(err, nameTakenMarkers)
}

// IsAlreadyExists reports whether the provider rejected a create because the
// exact resource already exists. Callers classifying errors must check
// IsNameTaken first.
func IsAlreadyExists(err error) bool {
	if IsNameTaken(err) {
		return false
	}
	return stderrContains(err, alreadyExistsMarkers)
}

// IsNotLoggedIn reports whether the error indicates there is no
// authenticated CLI session.
func IsNotLoggedIn(err error) bool {
	return stderrContains(err, notLoggedInMarkers)
}

func stderrContains(err error, markers []string) bool {
	if err == nil {
		return false
	}

	var azErr *Error
	if !errors.As(err, &azErr) {
		return false
	}

	stderr := strings.ToLower(azErr.Stderr)
	for _, marker := range markers {
		if strings.Contains(stderr, marker) {
			return true
		}
	}
	return false
}
