package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// FileName is the name of the persisted log file in every file tier.
const FileName = "contact-info.json"

var (
	// ErrNoPicker means no interactive location picker is available.
	ErrNoPicker = errors.New("no location picker available")
	// ErrNoHandle means the user cancelled or the pick failed.
	ErrNoHandle = errors.New("no writable location selected")
	// ErrPermission means write access to the picked location was denied.
	ErrPermission = errors.New("write permission denied")
)

// Location is a user-granted writable place for the log file.
type Location interface {
	// RequestWrite re-validates write access before every write.
	RequestWrite(ctx context.Context) error
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the whole file.
	Write(ctx context.Context, data []byte) error
}

// Picker obtains a Location through an explicit user interaction.
type Picker interface {
	Pick(ctx context.Context) (Location, error)
}

// FileTier writes the full log to a location picked once per session and
// reused for later submissions.
type FileTier struct {
	picker Picker

	mu   sync.Mutex
	loc  Location
	seed Log
}

// NewFileTier returns a tier using picker. A nil picker makes every Save
// fail with ErrNoPicker.
func NewFileTier(picker Picker) *FileTier {
	return &FileTier{picker: picker}
}

// Save writes l to the session location, picking one first if needed.
// Records already present in the file when it was first picked are kept
// ahead of l.
func (t *FileTier) Save(ctx context.Context, l Log) error {
	if t == nil || t.picker == nil {
		return ErrNoPicker
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.loc == nil {
		loc, err := t.picker.Pick(ctx)
		if err != nil {
			return err
		}
		if loc == nil {
			return ErrNoHandle
		}
		t.loc = loc
		t.seed = t.readSeed(ctx, loc)
	}

	if err := t.loc.RequestWrite(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrPermission, err)
	}
	data, err := t.seed.Merge(l).Pretty()
	if err != nil {
		return fmt.Errorf("encoding log: %w", err)
	}
	if err := t.loc.Write(ctx, data); err != nil {
		return fmt.Errorf("writing log: %w", err)
	}
	return nil
}

func (t *FileTier) readSeed(ctx context.Context, loc Location) Log {
	data, err := loc.Read(ctx)
	if err != nil {
		return Log{}
	}
	l, err := ParseLog(data)
	if err != nil {
		log.Printf("contact: ignoring unreadable %s: %v", FileName, err)
		return Log{}
	}
	return l
}

// DirLocation is contact/contact-info.json inside a chosen project folder.
type DirLocation struct {
	root string
	path string
}

// OpenDir creates the contact directory and file under root if needed.
func OpenDir(root string) (*DirLocation, error) {
	dir := filepath.Join(root, "contact")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	f.Close()
	return &DirLocation{root: root, path: path}, nil
}

// Path returns the log file path.
func (d *DirLocation) Path() string { return d.path }

func (d *DirLocation) RequestWrite(ctx context.Context) error {
	probe, err := os.CreateTemp(filepath.Dir(d.path), ".perm-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}

func (d *DirLocation) Read(ctx context.Context) ([]byte, error) {
	return os.ReadFile(d.path)
}

func (d *DirLocation) Write(ctx context.Context, data []byte) error {
	return writeFileAtomic(d.path, data)
}

// DirPicker always picks a fixed folder, e.g. one given on the command line.
type DirPicker struct {
	Root string
}

func (p DirPicker) Pick(ctx context.Context) (Location, error) {
	if p.Root == "" {
		return nil, ErrNoHandle
	}
	loc, err := OpenDir(p.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoHandle, err)
	}
	return loc, nil
}
