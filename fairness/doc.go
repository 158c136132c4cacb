// Package fairness implements the provably-fair random agreement
// protocol the duel is built on: a commit/verify/reveal scheme layered
// on a keyed message authentication code.
//
// # Core Components
//
// Commitment: A secret value in a known range, bound by an
// HMAC-SHA3-256 tag before the counterpart's input exists. The tag is
// publishable immediately; the secret and key stay private until the
// reveal.
//
// Round: One full run of the agreement protocol. It sequences the
// commitment, the counterpart's contribution and the reveal, and
// enforces that ordering — the ordering is the entire security
// argument.
//
// # Protocol
//
// The protocol agrees on a value in [0, range):
//  1. Commit: publish tag = HMAC-SHA3-256(key, decimal(secret)).
//  2. Contribute: the counterpart locks in a value in [0, range).
//  3. Reveal: disclose (secret, key).
//  4. Verify: anyone recomputes the tag; a mismatch is a
//     CommitmentViolation and the round must not be trusted.
//  5. The agreed value is (secret + contribution) mod range.
//
// Because the secret is fixed before the contribution is known and the
// contribution is fixed before the secret is known, the sum modulo
// range is uniform no matter how either side chose its value.
//
// # Security Properties
//
// The key is at least 32 bytes from a cryptographically secure source
// and the secret is drawn without modulo bias. HMAC-SHA3-256 gives
// second-preimage and key-recovery resistance, so the committing side
// cannot exhibit a different (secret, key) pair after the fact.
package fairness
