package contact

import (
	"encoding/json"
	"strings"
	"time"
)

// isoLayout matches the millisecond ISO-8601 form browsers produce.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// Fields are the raw values of the contact form.
type Fields struct {
	Name    string
	Email   string
	Company string
	Message string
}

// ValidationError lists the required fields that were left empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "Please fill in: " + strings.Join(e.Missing, ", ")
}

// Trimmed returns the fields with surrounding whitespace removed.
func (f Fields) Trimmed() Fields {
	return Fields{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Company: strings.TrimSpace(f.Company),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate returns a *ValidationError naming every empty required field, in
// form order.
func (f Fields) Validate() error {
	t := f.Trimmed()
	var missing []string
	for _, c := range []struct{ name, value string }{
		{"name", t.Name},
		{"email", t.Email},
		{"company", t.Company},
		{"message", t.Message},
	} {
		if c.value == "" {
			missing = append(missing, c.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Record is one persisted contact submission. It is never modified after
// creation.
type Record struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     string    `json:"company"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
	UserAgent   string    `json:"userAgent"`

	// rawSubmittedAt holds a stored timestamp that is not ISO-8601. It is
	// written back unchanged.
	rawSubmittedAt string
}

// NewRecord builds a record from validated fields.
func NewRecord(f Fields, at time.Time, userAgent string) Record {
	t := f.Trimmed()
	return Record{
		Name:        t.Name,
		Email:       t.Email,
		Company:     t.Company,
		Message:     t.Message,
		SubmittedAt: at.UTC().Truncate(time.Millisecond),
		UserAgent:   userAgent,
	}
}

type recordJSON struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submittedAt"`
	UserAgent   string `json:"userAgent"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	at := r.SubmittedAt.UTC().Format(isoLayout)
	if r.SubmittedAt.IsZero() && r.rawSubmittedAt != "" {
		at = r.rawSubmittedAt
	}
	return json.Marshal(recordJSON{
		Name:        r.Name,
		Email:       r.Email,
		Company:     r.Company,
		Message:     r.Message,
		SubmittedAt: at,
		UserAgent:   r.UserAgent,
	})
}

// UnmarshalJSON reads a stored record leniently. Fields that are not
// strings become empty, a numeric submittedAt is taken as Unix
// milliseconds and an unparseable one is kept verbatim.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rec := Record{
		Name:      stringField(raw, "name"),
		Email:     stringField(raw, "email"),
		Company:   stringField(raw, "company"),
		Message:   stringField(raw, "message"),
		UserAgent: stringField(raw, "userAgent"),
	}
	switch v := raw["submittedAt"].(type) {
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			rec.SubmittedAt = t.UTC()
		} else {
			rec.rawSubmittedAt = v
		}
	case float64:
		rec.SubmittedAt = time.UnixMilli(int64(v)).UTC()
	}
	*r = rec
	return nil
}

// stringField returns raw[key] when it is a string and "" otherwise.
func stringField(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}

// Payload is the body sent to the contact endpoint. The server stamps the
// submission time itself.
type Payload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Message   string `json:"message"`
	UserAgent string `json:"userAgent"`
}

// Payload returns the endpoint body for the record.
func (r Record) Payload() Payload {
	return Payload{
		Name:      r.Name,
		Email:     r.Email,
		Company:   r.Company,
		Message:   r.Message,
		UserAgent: r.UserAgent,
	}
}

// Equal reports whether two records are field-for-field identical.
func (r Record) Equal(o Record) bool {
	return r.Name == o.Name &&
		r.Email == o.Email &&
		r.Company == o.Company &&
		r.Message == o.Message &&
		r.SubmittedAt.Equal(o.SubmittedAt) &&
		r.rawSubmittedAt == o.rawSubmittedAt &&
		r.UserAgent == o.UserAgent
}
