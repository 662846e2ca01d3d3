// Package trust implements the privacy-preserving contact graph: identities
// declare who they know as one-way hash tokens, and the verifier gates
// three-party transfers on fully symmetric acquaintance. The plaintext
// counterpart never has to be present for a membership check.
package trust

import (
	"crypto/sha256"
	"encoding/hex"
)

// Token is a one-way digest of an identity, hex-encoded. Tokens are the only
// representation of a counterpart the store ever sees.
type Token string

// HashIdentity derives the token for a raw identity. Stable across calls and
// processes; clients computing tokens locally must produce the same value.
func HashIdentity(identity string) Token {
	sum := sha256.Sum256([]byte(identity))
	return Token(hex.EncodeToString(sum[:]))
}

// HashContacts tokenizes a raw contact list for the registration path.
func HashContacts(contacts []string) []Token {
	tokens := make([]Token, 0, len(contacts))
	for _, contact := range contacts {
		tokens = append(tokens, HashIdentity(contact))
	}
	return tokens
}
