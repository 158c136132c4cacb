// Package transcript keeps an append-only, hash-chained record of the
// fairness rounds played in one game, so the whole session can be
// re-verified after the fact. The chain lives in memory only and is
// discarded with the game.
package transcript

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/OlimovAlibek/iTransition/fairness"
)

// Entry records one agreement round. Tag and Key are hex-encoded, the
// same form they are shown to the counterpart in.
type Entry struct {
	Index        int    `json:"index"`
	RoundID      string `json:"round_id"`
	Purpose      string `json:"purpose"`
	Range        int    `json:"range"`
	Tag          string `json:"tag"`
	Contribution int    `json:"contribution"`
	Secret       int    `json:"secret"`
	Key          string `json:"key"`
	Combined     int    `json:"combined"`
	Timestamp    int64  `json:"timestamp"`
	PrevHash     string `json:"prev_hash"`
	Hash         string `json:"hash"`
}

// Transcript is the chain itself. The zero value is not usable; call New.
type Transcript struct {
	mu      sync.RWMutex
	entries []Entry
}

// New creates a transcript with its genesis entry (index 0, previous
// hash "0", no round data).
func New() *Transcript {
	t := &Transcript{}
	genesis := Entry{
		Index:     0,
		RoundID:   uuid.NewString(),
		Purpose:   "genesis",
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
	}
	genesis.Hash = entryHash(genesis)
	t.entries = []Entry{genesis}
	return t
}

// Append records a completed round. purpose names the decision the
// round settled (first move, a party's throw).
func (t *Transcript) Append(purpose string, valueRange int, out fairness.Outcome) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	latest := t.entries[len(t.entries)-1]
	entry := Entry{
		Index:        latest.Index + 1,
		RoundID:      uuid.NewString(),
		Purpose:      purpose,
		Range:        valueRange,
		Tag:          hex.EncodeToString(out.Tag),
		Contribution: out.Contribution,
		Secret:       out.Secret,
		Key:          hex.EncodeToString(out.Key),
		Combined:     out.Combined,
		Timestamp:    time.Now().Unix(),
		PrevHash:     latest.Hash,
	}
	entry.Hash = entryHash(entry)

	if err := validateEntry(entry, latest); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}
	t.entries = append(t.entries, entry)
	return nil
}

// Entries returns a copy of the chain, genesis included.
func (t *Transcript) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Entry(nil), t.entries...)
}

// Rounds returns how many agreement rounds have been recorded.
func (t *Transcript) Rounds() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries) - 1
}

// Verify walks the whole chain: genesis shape, index continuity, hash
// linkage, and for every round the MAC binding of the revealed
// (key, secret) pair to the published tag.
func (t *Transcript) Verify() error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.entries) == 0 {
		return fmt.Errorf("empty transcript")
	}
	if t.entries[0].PrevHash != "0" {
		return fmt.Errorf("invalid genesis entry")
	}
	for i := 1; i < len(t.entries); i++ {
		current := t.entries[i]
		if err := validateEntry(current, t.entries[i-1]); err != nil {
			return fmt.Errorf("entry %d invalid: %w", i, err)
		}
		if err := verifyRound(current); err != nil {
			return fmt.Errorf("entry %d invalid: %w", i, err)
		}
	}
	return nil
}

func verifyRound(e Entry) error {
	key, err := hex.DecodeString(e.Key)
	if err != nil {
		return fmt.Errorf("malformed key: %w", err)
	}
	tag, err := hex.DecodeString(e.Tag)
	if err != nil {
		return fmt.Errorf("malformed tag: %w", err)
	}
	if !fairness.VerifyTag(key, e.Secret, tag) {
		return fairness.ErrViolation
	}
	if e.Range <= 0 || e.Combined != (e.Secret+e.Contribution)%e.Range {
		return fmt.Errorf("combined index %d inconsistent with secret %d and contribution %d", e.Combined, e.Secret, e.Contribution)
	}
	return nil
}

func validateEntry(current, previous Entry) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if expected := entryHash(current); current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	return nil
}

func entryHash(e Entry) string {
	e.Hash = ""
	b, _ := json.Marshal(e)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
