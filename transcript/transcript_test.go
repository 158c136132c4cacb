package transcript

import (
	"errors"
	"testing"

	"github.com/OlimovAlibek/iTransition/fairness"
	"github.com/OlimovAlibek/iTransition/random"
)

func playRound(t *testing.T, valueRange, contribution int) fairness.Outcome {
	t.Helper()
	r, err := fairness.NewRound(random.NewSecure(), valueRange, fairness.MinKeySize)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Contribute(contribution); err != nil {
		t.Fatal(err)
	}
	out, err := r.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestAppendAndVerify(t *testing.T) {
	tr := New()
	if err := tr.Append("first move", 2, playRound(t, 2, 1)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := tr.Append("your throw", 6, playRound(t, 6, 4)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if tr.Rounds() != 2 {
		t.Fatalf("expected 2 rounds, got %d", tr.Rounds())
	}
	if err := tr.Verify(); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestVerifyDetectsTamperedSecret(t *testing.T) {
	tr := New()
	if err := tr.Append("your throw", 6, playRound(t, 6, 2)); err != nil {
		t.Fatal(err)
	}
	tr.entries[1].Secret = (tr.entries[1].Secret + 1) % 6
	tr.entries[1].Hash = entryHash(tr.entries[1])
	err := tr.Verify()
	if err == nil {
		t.Fatalf("expected verification failure after tampering")
	}
	if !errors.Is(err, fairness.ErrViolation) {
		t.Fatalf("expected a commitment violation, got %v", err)
	}
}

func TestVerifyDetectsBrokenChain(t *testing.T) {
	tr := New()
	if err := tr.Append("first move", 2, playRound(t, 2, 0)); err != nil {
		t.Fatal(err)
	}
	if err := tr.Append("your throw", 6, playRound(t, 6, 5)); err != nil {
		t.Fatal(err)
	}
	tr.entries[1].Purpose = "rewritten"
	tr.entries[1].Hash = entryHash(tr.entries[1])
	if err := tr.Verify(); err == nil {
		t.Fatalf("expected verification failure for a broken hash chain")
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	tr := New()
	if err := tr.Append("first move", 2, playRound(t, 2, 1)); err != nil {
		t.Fatal(err)
	}
	entries := tr.Entries()
	entries[1].Secret = 99
	if err := tr.Verify(); err != nil {
		t.Fatalf("mutating the returned slice corrupted the transcript: %v", err)
	}
}
