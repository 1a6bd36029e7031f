package ai

import (
	"errors"
	"strings"
)

// ErrUnavailable means the provider has no credential configured. Handlers
// map it to a configuration error rather than a generation failure.
var ErrUnavailable = errors.New("ai provider unavailable")

func IsQuotaErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") || strings.Contains(msg, "resource_exhausted")
}

func IsSafetyErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "safety")
}
