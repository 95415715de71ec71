package entity

import "strings"

// UserRef is a display-only reference to the user owning a record.
// It never implies ownership; records reference users by name only.
type UserRef struct {
	Name string `json:"name"`
}

// NewUserRef returns a reference for the given name, or nil when the name is blank
func NewUserRef(name string) *UserRef {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return &UserRef{Name: name}
}

// userName extracts the name of a possibly missing reference
func userName(ref *UserRef) (string, bool) {
	if ref == nil || ref.Name == "" {
		return "", false
	}
	return ref.Name, true
}
