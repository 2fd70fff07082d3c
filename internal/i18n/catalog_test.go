package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionFailure(t *testing.T) {
	t.Parallel()

	got := NewCatalog().SubmissionFailure(42, 100)
	assert.Equal(t,
		"Sorry, your submission only has a combined total of 42 words.  It must have at least 100.",
		got)
}

func TestSubmissionGeneral(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	got := c.SubmissionGeneral(c.EntryCount(3), c.AttributeCount(2))
	assert.Equal(t, "Well done!  You have now submitted 3 entries against 2 attributes.", got)
}

func TestSubmissionAward(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	got := c.SubmissionAward(c.EntryCount(5), c.AttributeCount(3))
	assert.Equal(t,
		"Many congratulations! Having submitted 5 entries against 3 attributes you now have the EDGE!",
		got)
}

func TestCounts_Singular(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	assert.Equal(t, "1 entry", c.EntryCount(1))
	assert.Equal(t, "1 attribute", c.AttributeCount(1))
}

func TestAwardNotification(t *testing.T) {
	t.Parallel()

	got := NewCatalog().AwardNotification("Sam", "Field", "p1234567")
	assert.Equal(t, "Sam Field (p1234567) has the EDGE!", got)
}

func TestSalutation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Dear Sam", NewCatalog().Salutation("Sam"))
}
