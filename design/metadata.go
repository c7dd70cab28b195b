package design

import "time"

// Metadata is the descriptive record carried by a design document: who made
// it, when, and under which tool profile. The creation timestamp is always
// held in UTC; every path that sets it converts first, so a timestamp
// supplied in any other zone is normalized rather than rejected.
type Metadata struct {
	// Name is the human-readable design name.
	Name string

	// Author identifies who created the design.
	Author string

	// Notes holds free-text remarks about the design.
	Notes string

	// ProfileSignature identifies the tool profile the design was authored
	// against (e.g. a device family signature).
	ProfileSignature string

	createdAt time.Time
}

// NewMetadata creates metadata stamped with the current UTC time.
func NewMetadata(name, author string) Metadata {
	return Metadata{
		Name:      name,
		Author:    author,
		createdAt: time.Now().UTC(),
	}
}

// WithTimestamp returns a copy with the creation timestamp set to t,
// converted to UTC. The instant is preserved.
func (m Metadata) WithTimestamp(t time.Time) Metadata {
	m.createdAt = t.UTC()
	return m
}

// WithNotes returns a copy with the notes set.
func (m Metadata) WithNotes(notes string) Metadata {
	m.Notes = notes
	return m
}

// WithProfileSignature returns a copy with the profile signature set.
func (m Metadata) WithProfileSignature(sig string) Metadata {
	m.ProfileSignature = sig
	return m
}

// CreatedAt returns the creation timestamp, always in UTC. The zero time
// means the timestamp was never set.
func (m Metadata) CreatedAt() time.Time {
	return m.createdAt
}

// IsValid reports whether the creation timestamp is set and in UTC.
func (m Metadata) IsValid() bool {
	return !m.createdAt.IsZero() && m.createdAt.Location() == time.UTC
}
