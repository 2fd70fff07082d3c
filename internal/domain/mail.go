package domain

// Mail is one outbound notification message with both plain-text and HTML
// bodies. Headers carry per-message extras such as auto-responder
// suppression on award mail.
type Mail struct {
	To      User
	Subject string
	Text    string
	HTML    string
	Headers map[string]string
}
