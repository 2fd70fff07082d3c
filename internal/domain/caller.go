package domain

// Capabilities checked before any domain logic runs. Grants live in the
// external authorization store; every operation requires CapabilityUseEdge.
const (
	CapabilityUseEdge = "edge:use"
)

// AdminUsername is the fixed administrative account that receives award
// notifications and signs the congratulation mail.
const AdminUsername = "edge_admin"

// Caller identifies the authenticated user behind a request. Identity is
// established by the institutional SSO token; this service only carries it.
type Caller struct {
	ID       int64
	Username string
}

// User is a directory record read from the store, used for mail recipients.
type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Email     string
}
