package fairness

import (
	"crypto/hmac"
	"fmt"
	"strconv"

	"golang.org/x/crypto/sha3"

	"github.com/OlimovAlibek/iTransition/random"
)

// MinKeySize is the smallest accepted key length in bytes. Shorter
// keys weaken the binding of the commitment.
const MinKeySize = 32

// Commitment binds a secret value in [0, Range) before the
// counterpart's contribution is known. The tag is publishable at
// construction time; the secret and key must stay private until the
// counterpart has locked in its contribution.
type Commitment struct {
	valueRange int
	secret     int
	key        []byte
	tag        []byte
}

// NewCommitment draws a fresh key and a uniform secret in
// [0, valueRange) from src and computes the binding tag. keySize below
// MinKeySize is rejected.
func NewCommitment(src random.Source, valueRange, keySize int) (*Commitment, error) {
	if valueRange <= 0 {
		return nil, fmt.Errorf("fairness: value range must be positive, got %d", valueRange)
	}
	if keySize < MinKeySize {
		return nil, fmt.Errorf("fairness: key size %d below minimum %d", keySize, MinKeySize)
	}
	key := src.Key(keySize)
	secret := src.Intn(valueRange)
	return &Commitment{
		valueRange: valueRange,
		secret:     secret,
		key:        key,
		tag:        ComputeTag(key, secret),
	}, nil
}

// Range returns the committed value range. Public together with Tag.
func (c *Commitment) Range() int { return c.valueRange }

// Tag returns the authentication tag binding the secret. Safe to
// publish before the counterpart moves.
func (c *Commitment) Tag() []byte { return append([]byte(nil), c.tag...) }

// Reveal discloses the secret and the key. Calling it before the
// counterpart's contribution is recorded voids the fairness property;
// that discipline is enforced by Round, not here.
func (c *Commitment) Reveal() (secret int, key []byte) {
	return c.secret, append([]byte(nil), c.key...)
}

// ComputeTag is the binding function: HMAC-SHA3-256 over the decimal
// string of value, keyed by key.
func ComputeTag(key []byte, value int) []byte {
	mac := hmac.New(sha3.New256, key)
	mac.Write([]byte(strconv.Itoa(value)))
	return mac.Sum(nil)
}

// VerifyTag recomputes the tag from a revealed (key, value) pair and
// compares it to the published one in constant time.
func VerifyTag(key []byte, value int, tag []byte) bool {
	return hmac.Equal(ComputeTag(key, value), tag)
}
