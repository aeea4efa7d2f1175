// Package validation holds the field rules applied to a user before it is
// registered. Every rule is a pure function over the raw text typed by the
// user, so the same input always yields the same decision.
package validation

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/userregistry/internal/common"
)

// Field keys. They match the JSON keys of models.User.
const (
	FieldFirstName      = "firstName"
	FieldLastName       = "lastName"
	FieldIdentification = "identification"
	FieldAge            = "age"
	FieldEmail          = "email"
)

// MinAge is the lowest accepted age.
const MinAge = 18

// Messages maps each field key to the fixed message reported when its rule fails.
var Messages = map[string]string{
	FieldFirstName:      "first name must contain only letters",
	FieldLastName:       "last name must contain only letters",
	FieldIdentification: "identification must be longer than one character and be an integer",
	FieldAge:            "you must be of legal age (18 or older) to vote",
	FieldEmail:          "enter a valid email address",
}

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidName reports whether s is a non-empty run of ASCII letters.
// It is used for both first and last names.
func ValidName(s string) bool {
	return nameRe.MatchString(s)
}

// ValidIdentification reports whether s has more than one character and
// consists only of decimal digits.
func ValidIdentification(s string) bool {
	if len(s) <= 1 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseAge converts raw into an age. ok is false when raw is not an integer.
func ParseAge(raw string) (age int, ok bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ValidAge reports whether raw is an integer of at least MinAge.
// Fractional values such as "18.5" are rejected.
func ValidAge(raw string) bool {
	n, ok := ParseAge(raw)
	return ok && n >= MinAge
}

// ValidEmail reports whether s looks like local@domain.tld with no spaces.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// Fields carries the raw values to be checked. Password has no rule.
type Fields struct {
	FirstName      string
	LastName       string
	Identification string
	Age            string
	Email          string
}

// Errors maps a field key to its failure message.
type Errors map[string]string

// Error renders the failures in a stable (sorted) order.
func (e Errors) Error() string {
	keys := e.Keys()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, common.ErrValidation) true for any Errors value.
func (e Errors) Is(target error) bool {
	return target == common.ErrValidation
}

// Keys returns the failed field keys sorted alphabetically.
func (e Errors) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate runs every rule and collects all failures; it does not stop at
// the first one. It returns nil when all fields are acceptable.
func Validate(f Fields) Errors {
	errs := Errors{}

	if !ValidName(f.FirstName) {
		errs[FieldFirstName] = Messages[FieldFirstName]
	}
	if !ValidName(f.LastName) {
		errs[FieldLastName] = Messages[FieldLastName]
	}
	if !ValidIdentification(f.Identification) {
		errs[FieldIdentification] = Messages[FieldIdentification]
	}
	if !ValidAge(f.Age) {
		errs[FieldAge] = Messages[FieldAge]
	}
	if !ValidEmail(f.Email) {
		errs[FieldEmail] = Messages[FieldEmail]
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
