package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoSupportedOS     = errors.New("unsupported operating system")
	ErrNoSuchCodec       = errors.New("codec not installed")
	ErrSourceUnsupported = errors.New("unsupported source format")
	ErrQueueAccess       = errors.New("queue access error")
	ErrConversionFailed  = errors.New("conversion failed")
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrConfiguration     = errors.New("configuration error")
	ErrExternalTool      = errors.New("external tool error")
	ErrRunInProgress     = errors.New("run already in progress")
)

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether err must stop the whole run. Startup failures are
// fatal; everything that concerns a single file is not.
func IsFatal(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrNoSupportedOS),
		errors.Is(err, ErrNoSuchCodec),
		errors.Is(err, ErrDirectoryNotFound),
		errors.Is(err, ErrConfiguration),
		errors.Is(err, ErrRunInProgress):
		return true
	default:
		return false
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
