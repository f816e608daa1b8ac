package service

// PayloadValidator defines structural validation of credential payloads.
// Validation runs before any repository access so bad input never costs I/O.
type PayloadValidator interface {
	// ValidateRegistration checks a registration payload (presence, minimum
	// lengths, username charset).
	ValidateRegistration(username, password string) error

	// ValidateLogin checks a login payload.
	ValidateLogin(username, password string) error
}
