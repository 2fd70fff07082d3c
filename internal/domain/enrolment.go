package domain

// Enrolment channel methods. Self-service join/leave only works through a
// "self" channel; faculty resolution only considers "database" channels.
const (
	EnrolMethodSelf     = "self"
	EnrolMethodDatabase = "database"
	EnrolMethodManual   = "manual"
)

// RoleStudent is the enrolment role counted by faculty resolution.
const RoleStudent = "student"

// EnrolmentChannel is an enrolment route into a course, as configured by
// the external enrolment system.
type EnrolmentChannel struct {
	ID               int64
	CourseID         int64
	Method           string
	Enabled          bool
	AllowSelfUnenrol bool
}
