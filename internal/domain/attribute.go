package domain

import "strings"

// Attribute is a competency category that journal entries are written
// against. Attributes are not stored as first-class rows: the catalogue
// keeps them as tags labelled "<name> (<code>)" under the EDGE grouping
// tag, and the catalog adapter parses the label exactly once.
type Attribute struct {
	Code        string
	Name        string
	Description string
}

// AttributeSummary is one row of the attribute listing, annotated with the
// caller's submitted-entry count for that code.
type AttributeSummary struct {
	Code             string
	Name             string
	EntriesSubmitted int
}

// AttributeDetail is the full attribute view with the caller's entry counts
// partitioned by the submitted flag.
type AttributeDetail struct {
	Name                string
	Description         string
	EntriesSubmitted    int
	EntriesNotSubmitted int
}

// ParseAttributeLabel splits a catalogue label of the form "<name> (<code>)"
// into its name and code. ok is false when the label does not match the
// convention; callers skip such labels rather than failing the operation.
func ParseAttributeLabel(label string) (name, code string, ok bool) {
	open := strings.Index(label, " (")
	if open < 1 {
		return "", "", false
	}
	closeIdx := strings.Index(label[open+2:], ")")
	if closeIdx < 1 {
		return "", "", false
	}
	return label[:open], label[open+2 : open+2+closeIdx], true
}

// ComposeAttributeLabel is the inverse of ParseAttributeLabel. For every
// well-formed label, ComposeAttributeLabel(ParseAttributeLabel(l)) == l.
func ComposeAttributeLabel(name, code string) string {
	return name + " (" + code + ")"
}
