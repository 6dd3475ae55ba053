package batchrun

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"sndconvert/internal/services"
)

// lockPath derives a stable lock file name for dir.
func lockPath(lockDir, dir string) string {
	name := uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+dir)).String()
	return filepath.Join(lockDir, name+".lock")
}

// acquireLock takes the per-directory run lock. An empty lockDir disables
// locking and returns a nil lock.
func acquireLock(lockDir, dir string) (*flock.Flock, error) {
	if lockDir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	lock := flock.New(lockPath(lockDir, dir))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrRunInProgress, "batchrun", "acquire lock",
			fmt.Sprintf("another sndconvert run is converting %s", dir), nil)
	}
	return lock, nil
}
