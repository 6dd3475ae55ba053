package deps

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

// Requirement defines an external tool sndconvert relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	// Package names what to install when the command is missing.
	Package  string
	Optional bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Package     string
	Optional    bool
	Available   bool
	Detail      string
}

// CheckBinaries evaluates the provided requirements and reports availability.
// Commands containing a path separator are checked in place; bare names are
// searched on PATH.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Package:     strings.TrimSpace(req.Package),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Available = false
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Available = false
			status.Detail = describeLookupError(cmd, err)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// Missing returns the unavailable, non-optional entries of statuses.
func Missing(statuses []Status) []Status {
	var missing []Status
	for _, status := range statuses {
		if !status.Available && !status.Optional {
			missing = append(missing, status)
		}
	}
	return missing
}

func describeLookupError(cmd string, err error) string {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Sprintf("binary %q is not executable", cmd)
	}
	return fmt.Sprintf("binary %q not found", cmd)
}
