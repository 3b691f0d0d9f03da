// Package vault holds credential records and answers lookups with the secret
// always redacted. The secret is compared during the scan but is excluded
// from every externally returned copy: the redacted Entry type has no secret
// field at all, so omission holds by construction.
package vault

import (
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/strftime"

	"probe/src/conf"
)

type (
	// Credential is a full record including the secret. It never crosses the
	// package boundary outward; lookups return Entry.
	Credential struct {
		ID        string
		Name      string
		Secret    string
		CreatedAt time.Time
	}
	// Entry is the redacted view of a credential.
	Entry struct {
		ID        string
		Name      string
		CreatedAt time.Time
	}
	// List is an in-memory, insertion-ordered credential list.
	List struct {
		creds []Credential
	}
)

// NewList builds a list from creds, assigning ids and timestamps to records
// that lack them. The input slice is copied, never retained.
func NewList(creds ...Credential) *List {
	l := &List{creds: make([]Credential, 0, len(creds))}
	for _, c := range creds {
		l.Add(c)
	}
	return l
}

// Add appends a credential, assigning an id and creation time when unset.
func (l *List) Add(c Credential) Entry {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	l.creds = append(l.creds, c)
	return c.redacted()
}

// Len returns the number of stored credentials.
func (l *List) Len() int { return len(l.creds) }

// LookupSecret scans the list in insertion order and returns the redacted
// entry of the first credential whose secret equals the input exactly.
// Comparison is case-sensitive with no normalization. No match is not an
// error, it is a valid absent outcome. The list is never mutated.
func (l *List) LookupSecret(secret string) (Entry, bool) {
	for _, c := range l.creds {
		if c.Secret == secret {
			return c.redacted(), true
		}
	}
	return Entry{}, false
}

// Entries returns the redacted view of every credential in insertion order.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.creds))
	for i, c := range l.creds {
		out[i] = c.redacted()
	}
	return out
}

func (c Credential) redacted() Entry {
	return Entry{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

// CreatedAtString renders the creation time with an strftime format, falling
// back to conf.TIMEFORMAT when format is empty.
func (e Entry) CreatedAtString(format string) (string, error) {
	if format == "" {
		format = conf.TIMEFORMAT
	}
	strf, err := strftime.New(format)
	if err != nil {
		return "", err
	}
	return strf.FormatString(e.CreatedAt), nil
}
