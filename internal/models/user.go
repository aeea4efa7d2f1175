// Package models defines the user record and the document that holds the
// whole registry, together with the in-memory lookups performed on it.
package models

// User is a single registered person. Field order is the JSON key order
// written to disk.
type User struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Identification string `json:"identification"`
	Age            int    `json:"age"`
	Email          string `json:"email"`
	// Password is plain text unless password hashing is enabled, in which
	// case it holds a bcrypt hash.
	Password string `json:"password"`
}

// UserDocument is the entire persisted state: one object with one array.
// Identification is not unique; lookups act on the first match.
type UserDocument struct {
	RegisteredUsers []User `json:"registeredUsers"`
}

// NewUserDocument returns an empty document whose collection encodes as [].
func NewUserDocument() *UserDocument {
	return &UserDocument{RegisteredUsers: []User{}}
}

// Append adds u at the end of the collection. No uniqueness check is made.
func (d *UserDocument) Append(u User) {
	d.RegisteredUsers = append(d.RegisteredUsers, u)
}

// FindByIdentification returns a copy of the first record whose
// identification equals id.
func (d *UserDocument) FindByIdentification(id string) (*User, bool) {
	for i := range d.RegisteredUsers {
		if d.RegisteredUsers[i].Identification == id {
			u := d.RegisteredUsers[i]
			return &u, true
		}
	}
	return nil, false
}

// RemoveByIdentification removes the first record whose identification
// equals id and reports whether anything was removed.
func (d *UserDocument) RemoveByIdentification(id string) bool {
	for i := range d.RegisteredUsers {
		if d.RegisteredUsers[i].Identification == id {
			d.RegisteredUsers = append(d.RegisteredUsers[:i], d.RegisteredUsers[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of records.
func (d *UserDocument) Len() int {
	return len(d.RegisteredUsers)
}
