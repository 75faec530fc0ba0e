package repository

import (
	"errors"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// Domain error kinds. Every failure crossing the repository boundary wraps
// exactly one of these sentinels; no SDK error type ever escapes. Messages
// never carry connection strings, keys or item payloads.
var (
	ErrConnection           = errors.New("connection failure")
	ErrAuth                 = errors.New("authentication failure")
	ErrResourceNotFound     = errors.New("resource not found")
	ErrResourceExists       = errors.New("resource already exists")
	ErrQuotaExceeded        = errors.New("quota exceeded")
	ErrInvalidPartitionKey  = errors.New("invalid partition key path")
	ErrItemNotFound         = errors.New("item not found")
	ErrPartitionKeyMismatch = errors.New("partition key mismatch")
	ErrDuplicateItem        = errors.New("duplicate item")
	ErrInvalidInput         = errors.New("invalid input")
)

// ExitCode maps a domain error to the CLI process exit status. Unknown
// errors map to 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidPartitionKey):
		return 2
	case errors.Is(err, ErrAuth):
		return 3
	case errors.Is(err, ErrConnection):
		return 4
	case errors.Is(err, ErrResourceNotFound), errors.Is(err, ErrItemNotFound):
		return 5
	case errors.Is(err, ErrResourceExists), errors.Is(err, ErrDuplicateItem):
		return 6
	case errors.Is(err, ErrQuotaExceeded):
		return 7
	case errors.Is(err, ErrPartitionKeyMismatch):
		return 8
	default:
		return 1
	}
}

// statusOf extracts the HTTP status code from a transport error, when the
// failure came from the service rather than the local stack.
func statusOf(err error) (int, bool) {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode, true
	}
	return 0, false
}

var connectivityMarkers = []string{
	"dial",
	"connection refused",
	"connection reset",
	"no such host",
	"network",
	"timeout",
	"eof",
}

// isConnectivity reports whether a non-HTTP error looks like a network
// problem rather than a credential problem.
func isConnectivity(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range connectivityMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// quotaIndicated reports whether a transport error signals a throughput or
// account quota rejection (HTTP 429 or a quota-mentioning body).
func quotaIndicated(err error) bool {
	if code, ok := statusOf(err); ok && code == 429 {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "quota")
}
