package entity

import "strings"

// GlobalSubject is the path value callers use to address the shared profile
// (or the implicit single location) rather than a specific location.
const GlobalSubject = "global"

// Location is one managed business site. Its values live in the location store.
type Location struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	IsPrimary  bool     `json:"is_primary"`
	Categories []string `json:"categories,omitempty"`
}

// Subject identifies whose values a resolver reads.
//   - LocationID names a stored location; empty means "not specified".
//   - DraftID is a best-effort key for a location being created that has not
//     been saved yet; it is only consulted when LocationID is empty.
type Subject struct {
	LocationID string
	DraftID    string
}

// SubjectFor builds a Subject from a raw identifier, treating "global" as unspecified.
func SubjectFor(raw string) Subject {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, GlobalSubject) {
		raw = ""
	}

	return Subject{LocationID: raw}
}

// IsUnspecified reports whether neither a location nor a draft is named.
func (s Subject) IsUnspecified() bool {
	return s.LocationID == "" && s.DraftID == ""
}
