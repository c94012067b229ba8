package contact

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Log is the ordered, append-only collection of submissions.
type Log []Record

// ParseLog decodes a JSON array of records. Empty input is an empty log.
func ParseLog(data []byte) (Log, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Log{}, nil
	}
	var l Log
	if err := json.Unmarshal(data, &l); err != nil {
		return Log{}, fmt.Errorf("decoding submission log: %w", err)
	}
	if l == nil {
		// "null" is not an array.
		return Log{}, fmt.Errorf("decoding submission log: not an array")
	}
	return l, nil
}

// Append returns a new log with r added at the end. The receiver is not
// modified.
func (l Log) Append(r Record) Log {
	out := make(Log, len(l), len(l)+1)
	copy(out, l)
	return append(out, r)
}

// Contains reports whether an identical record is already in the log.
func (l Log) Contains(r Record) bool {
	for _, x := range l {
		if x.Equal(r) {
			return true
		}
	}
	return false
}

// Merge returns the records of l that other does not contain, followed by
// every record of other in order. Duplicates within other are kept.
func (l Log) Merge(other Log) Log {
	out := make(Log, 0, len(l)+len(other))
	for _, r := range l {
		if !other.Contains(r) {
			out = append(out, r)
		}
	}
	return append(out, other...)
}

// Compact encodes the log as a single-line JSON array.
func (l Log) Compact() ([]byte, error) {
	if l == nil {
		l = Log{}
	}
	return json.Marshal(l)
}

// Pretty encodes the log as a two-space indented JSON array, the format of
// contact-info.json.
func (l Log) Pretty() ([]byte, error) {
	if l == nil {
		l = Log{}
	}
	return json.MarshalIndent(l, "", "  ")
}
