package fairness

import (
	"bytes"
	"testing"

	"github.com/OlimovAlibek/iTransition/random"
)

func TestCommitRevealRoundTrip(t *testing.T) {
	src := random.NewSecure()
	for _, valueRange := range []int{2, 6, 7, 100} {
		for i := 0; i < 50; i++ {
			c, err := NewCommitment(src, valueRange, MinKeySize)
			if err != nil {
				t.Fatalf("NewCommitment(%d): %v", valueRange, err)
			}
			tag := c.Tag()
			secret, key := c.Reveal()
			if secret < 0 || secret >= valueRange {
				t.Fatalf("secret %d outside [0, %d)", secret, valueRange)
			}
			if !VerifyTag(key, secret, tag) {
				t.Fatalf("revealed pair does not reproduce the tag")
			}
			// Verification is idempotent.
			if !VerifyTag(key, secret, tag) {
				t.Fatalf("second verification failed")
			}
		}
	}
}

func TestVerifyTagRejectsTampering(t *testing.T) {
	src := &random.Scripted{Values: []int{3}, KeyByte: 0x42}
	c, err := NewCommitment(src, 6, MinKeySize)
	if err != nil {
		t.Fatal(err)
	}
	tag := c.Tag()
	secret, key := c.Reveal()

	if VerifyTag(key, secret+1, tag) {
		t.Fatalf("tag verified for a different value")
	}
	badKey := append([]byte(nil), key...)
	badKey[0] ^= 0xFF
	if VerifyTag(badKey, secret, tag) {
		t.Fatalf("tag verified with a different key")
	}
	badTag := append([]byte(nil), tag...)
	badTag[0] ^= 0xFF
	if VerifyTag(key, secret, badTag) {
		t.Fatalf("corrupted tag verified")
	}
}

func TestTagBindsDecimalString(t *testing.T) {
	key := bytes.Repeat([]byte{0x01}, MinKeySize)
	if bytes.Equal(ComputeTag(key, 1), ComputeTag(key, 10)) {
		t.Fatalf("tags for 1 and 10 collide")
	}
	if !bytes.Equal(ComputeTag(key, 5), ComputeTag(key, 5)) {
		t.Fatalf("tag is not deterministic")
	}
}

func TestNewCommitmentRejectsBadParameters(t *testing.T) {
	src := random.NewSecure()
	if _, err := NewCommitment(src, 0, MinKeySize); err == nil {
		t.Fatalf("expected error for zero range")
	}
	if _, err := NewCommitment(src, 6, MinKeySize-1); err == nil {
		t.Fatalf("expected error for short key")
	}
}

func TestTagIsPublishableCopy(t *testing.T) {
	src := random.NewSecure()
	c, err := NewCommitment(src, 6, MinKeySize)
	if err != nil {
		t.Fatal(err)
	}
	tag := c.Tag()
	tag[0] ^= 0xFF
	secret, key := c.Reveal()
	if !VerifyTag(key, secret, c.Tag()) {
		t.Fatalf("mutating a published tag copy corrupted the commitment")
	}
}
