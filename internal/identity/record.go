package identity

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/kwanchai/cleanbook/internal/model"
)

// TTL is how long a persisted identity record stays valid after a write
const TTL = 24 * time.Hour

// Record is the externally stored form of an identity. It carries exactly
// the fields needed to resume a session, nothing else, plus the expiry
// stamped at write time. It is a convenience cache, not a security
// boundary: the backing API re-validates the credential on every call.
type Record struct {
	SubjectID   string `json:"subjectId"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	Credential  string `json:"credential"`
	ExpiresAt   int64  `json:"expiresAt"` // unix seconds
}

// NewRecord builds a record from an identity with a fresh expiry window
func NewRecord(id *model.Identity, now time.Time) Record {
	return Record{
		SubjectID:   id.SubjectID,
		DisplayName: id.DisplayName,
		Role:        string(id.Role),
		Credential:  id.Credential,
		ExpiresAt:   now.Add(TTL).Unix(),
	}
}

// Identity converts the record back to a domain identity
func (r Record) Identity() *model.Identity {
	return &model.Identity{
		SubjectID:   r.SubjectID,
		DisplayName: r.DisplayName,
		Role:        model.Role(r.Role),
		Credential:  r.Credential,
	}
}

// Expired reports whether the record's window has passed
func (r Record) Expired(now time.Time) bool {
	return now.Unix() >= r.ExpiresAt
}

// Encode serialises the record for cookie transport
func (r Record) Encode() string {
	data, err := json.Marshal(r)
	if err != nil {
		// Record contains only plain fields; marshalling cannot fail
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeRecord parses an encoded record. A malformed value is treated as
// "no identity": the bool result is false and no error is surfaced.
func DecodeRecord(value string) (Record, bool) {
	data, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Record{}, false
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, false
	}
	if r.Credential == "" {
		return Record{}, false
	}
	return r, true
}
