package trust

import "context"

// Verifier decides whether three identities form a fully mutual contact
// triangle. A transfer creates a debt relationship between
// strangers-of-strangers, so every pair must have independently declared the
// other; a one-sided declaration is insufficient. This also keeps the engine
// from acting as a contact-discovery oracle.
type Verifier struct {
	store Store
}

// NewVerifier wires a Verifier to the given contact trust store.
func NewVerifier(store Store) *Verifier {
	return &Verifier{store: store}
}

// VerifyMutualTrust reports whether all six directional relations hold between
// a, b, and c. It short-circuits on the first missing relation.
func (v *Verifier) VerifyMutualTrust(ctx context.Context, a, b, c string) (bool, error) {
	hashA, hashB, hashC := HashIdentity(a), HashIdentity(b), HashIdentity(c)

	relations := []struct {
		holder      string
		counterpart Token
	}{
		{a, hashB}, {a, hashC},
		{b, hashA}, {b, hashC},
		{c, hashA}, {c, hashB},
	}

	for _, rel := range relations {
		ok, err := v.store.HasTrust(ctx, rel.holder, rel.counterpart)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
