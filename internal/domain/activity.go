package domain

import "strings"

// ActivityCodePrefix marks a course as an EDGE activity. The full course
// code is "EDGE~<faculty>~<mnemonic>~<code1>[~<code2>...]" with at least one
// attribute code after the faculty and mnemonic segments.
const ActivityCodePrefix = "EDGE~"

// Activity is an enrollable course-like offering tagged with one or more
// competency attributes. Faculty, Mnemonic and AttributeCodes are structured
// fields populated by the catalog adapter when the course code is parsed.
type Activity struct {
	ID             int64
	Name           string
	ShortName      string
	Description    string
	Visible        bool
	Faculty        string
	Mnemonic       string
	AttributeCodes []string

	// Joined is a per-caller derived flag: is the caller enrolled.
	Joined bool
}

// ActivityRef is one row of the per-user activity listing.
type ActivityRef struct {
	ID     int64
	Name   string
	Joined bool
}

// ParseActivityCode parses a structured course code into its faculty,
// mnemonic and attribute code segments. ok is false when the code does not
// start with the EDGE prefix or has fewer than one attribute code; such
// courses are excluded from listings rather than aborting the call.
func ParseActivityCode(code string) (faculty, mnemonic string, attributes []string, ok bool) {
	if !strings.HasPrefix(code, ActivityCodePrefix) {
		return "", "", nil, false
	}
	segments := strings.Split(code[len(ActivityCodePrefix):], "~")
	if len(segments) < 3 {
		return "", "", nil, false
	}
	for _, s := range segments {
		if s == "" {
			return "", "", nil, false
		}
	}
	return segments[0], segments[1], segments[2:], true
}

// ComposeActivityCode is the inverse of ParseActivityCode, used by tests and
// seed tooling to build well-formed course codes.
func ComposeActivityCode(faculty, mnemonic string, attributes []string) string {
	parts := append([]string{faculty, mnemonic}, attributes...)
	return ActivityCodePrefix + strings.Join(parts, "~")
}

// IsPlacementUsername reports whether an external identifier matches the
// placement-student pattern: a leading 'p' followed by only digits.
// Placement students see activities from all faculties.
func IsPlacementUsername(username string) bool {
	if len(username) < 2 || username[0] != 'p' {
		return false
	}
	for _, r := range username[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
