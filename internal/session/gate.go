package session

import (
	"crypto/subtle"
)

// IncorrectPasswordMessage is the user-visible text shown on a failed verify.
const IncorrectPasswordMessage = "incorrect password"

// Gate locks the UI behind a single shared access code for the lifetime of a
// session. It is a UI gate only, not a security boundary: the code and the
// gated content are both delivered to the client regardless of state.
// Unlimited retries are permitted.
type Gate struct {
	accessCode    string
	authenticated bool
	errMessage    string
}

// NewGate creates a gate for the given shared access code.
func NewGate(accessCode string) *Gate {
	return &Gate{accessCode: accessCode}
}

// Verify compares the candidate against the shared code. On match the gate
// becomes authenticated and any previous error text is cleared. On mismatch
// the gate stays locked and records the incorrect-password message.
func (g *Gate) Verify(candidate string) bool {
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(g.accessCode)) == 1 {
		g.authenticated = true
		g.errMessage = ""
		return true
	}
	g.authenticated = false
	g.errMessage = IncorrectPasswordMessage
	return false
}

func (g *Gate) Authenticated() bool {
	return g.authenticated
}

// ErrorMessage returns the text to show after a failed verify, empty when the
// last verify succeeded or none was attempted.
func (g *Gate) ErrorMessage() string {
	return g.errMessage
}
