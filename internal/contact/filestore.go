package contact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileStore is the server-side submission log kept in contact-info.json.
type FileStore struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewFileStore opens the store in dir, creating dir and an empty log file
// when they do not exist.
func NewFileStore(dir string) (*FileStore, error) {
	s := &FileStore{path: filepath.Join(dir, FileName), now: time.Now}
	if err := s.ensure(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the log file path.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) ensure() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating contact dir: %w", err)
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := os.WriteFile(s.path, []byte("[]"), 0o644); err != nil {
			return fmt.Errorf("creating %s: %w", s.path, err)
		}
	} else if err != nil {
		return fmt.Errorf("accessing %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) load() (Log, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return ParseLog(data)
}

// Append stamps the payload with the server time, appends it and returns
// the new number of stored submissions.
func (s *FileStore) Append(p Payload) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensure(); err != nil {
		return 0, err
	}
	l, err := s.load()
	if err != nil {
		return 0, err
	}
	l = l.Append(Record{
		Name:        p.Name,
		Email:       p.Email,
		Company:     p.Company,
		Message:     p.Message,
		SubmittedAt: s.now().UTC().Truncate(time.Millisecond),
		UserAgent:   p.UserAgent,
	})
	data, err := l.Pretty()
	if err != nil {
		return 0, fmt.Errorf("encoding log: %w", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return 0, err
	}
	return len(l), nil
}

// Count returns the number of stored submissions.
func (s *FileStore) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.load()
	if err != nil {
		return 0, err
	}
	return len(l), nil
}

// DecodePayload reads an endpoint body. Fields that are missing or not
// strings become empty strings.
func DecodePayload(data []byte) (Payload, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Payload{}, fmt.Errorf("decoding payload: %w", err)
	}
	return Payload{
		Name:      stringField(raw, "name"),
		Email:     stringField(raw, "email"),
		Company:   stringField(raw, "company"),
		Message:   stringField(raw, "message"),
		UserAgent: stringField(raw, "userAgent"),
	}, nil
}
