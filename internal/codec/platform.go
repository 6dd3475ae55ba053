package codec

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sys/unix"

	"sndconvert/internal/services"
)

// CurrentPlatform returns the kernel name reported by uname(2), such as
// "Linux" or "Darwin".
func CurrentPlatform() (string, error) {
	var name unix.Utsname
	if err := unix.Uname(&name); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}
	return unix.ByteSliceToString(name.Sysname[:]), nil
}

// ResolveToolDir looks up the tool directory for platform. Platforms missing
// from dirs are not supported.
func ResolveToolDir(platform string, dirs map[string]string) (string, error) {
	platform = strings.TrimSpace(platform)
	if dir, ok := dirs[platform]; ok && strings.TrimSpace(dir) != "" {
		return dir, nil
	}
	known := make([]string, 0, len(dirs))
	for name := range dirs {
		known = append(known, name)
	}
	sort.Strings(known)
	return "", services.Wrap(
		services.ErrNoSupportedOS,
		"codec",
		"resolve tool directory",
		fmt.Sprintf("platform %q is not one of [%s]", platform, strings.Join(known, ", ")),
		nil,
	)
}
