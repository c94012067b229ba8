package contact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Downloader hands a generated file to the user for manual placement.
type Downloader interface {
	Download(ctx context.Context, name string, data []byte) error
}

// DirDownloader saves downloads into a folder, replacing any earlier file
// of the same name.
type DirDownloader struct {
	Dir string
}

// DefaultDownloadDir returns ~/Downloads, or the working directory when the
// home directory is unknown.
func DefaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

func (d DirDownloader) Download(ctx context.Context, name string, data []byte) error {
	dir := d.Dir
	if dir == "" {
		dir = DefaultDownloadDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating download dir: %w", err)
	}
	return writeFileAtomic(filepath.Join(dir, name), data)
}
