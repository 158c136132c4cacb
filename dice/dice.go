// Package dice models the non-transitive dice the duel is played with
// and computes the pairwise win probabilities between them.
package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// FaceCount is the fixed number of faces every die must have.
const FaceCount = 6

// Die is an immutable sequence of six non-negative face values.
// Duplicates are allowed; the order is the one given on the command
// line and indexes the face selected by a throw.
type Die [FaceCount]int

// String renders the die the way it was written: comma-separated faces.
func (d Die) String() string {
	parts := make([]string, FaceCount)
	for i, f := range d {
		parts[i] = strconv.Itoa(f)
	}
	return strings.Join(parts, ",")
}

// Set is an ordered collection of dice. A die's index in the set is
// its identity for the whole game; the set is never re-sorted.
type Set []Die

// MinDice is the smallest playable set. Fewer dice cannot form a
// rock-paper-scissors style cycle.
const MinDice = 3

// ConfigError reports an invalid dice configuration. It aborts the
// program before any game logic or randomness runs.
type ConfigError struct {
	Token  string // offending argument, empty when the count is wrong
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Token == "" {
		return "invalid dice configuration: " + e.Reason
	}
	return fmt.Sprintf("invalid die %q: %s", e.Token, e.Reason)
}

// Parse validates raw command-line tokens and builds a Set preserving
// their order. Each token must be a comma-separated list of exactly
// six non-negative integers, and at least MinDice tokens are required.
func Parse(tokens []string) (Set, error) {
	if len(tokens) < MinDice {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("at least %d dice are required, got %d (example: 2,2,4,4,9,9 6,8,1,1,8,6 7,5,3,7,5,3)", MinDice, len(tokens)),
		}
	}
	set := make(Set, 0, len(tokens))
	for _, token := range tokens {
		die, err := parseDie(token)
		if err != nil {
			return nil, err
		}
		set = append(set, die)
	}
	return set, nil
}

func parseDie(token string) (Die, error) {
	parts := strings.Split(token, ",")
	if len(parts) != FaceCount {
		return Die{}, &ConfigError{
			Token:  token,
			Reason: fmt.Sprintf("expected exactly %d comma-separated faces, got %d", FaceCount, len(parts)),
		}
	}
	var die Die
	for i, part := range parts {
		face, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Die{}, &ConfigError{Token: token, Reason: fmt.Sprintf("face %q is not an integer", part)}
		}
		if face < 0 {
			return Die{}, &ConfigError{Token: token, Reason: fmt.Sprintf("face %d is negative", face)}
		}
		die[i] = face
	}
	return die, nil
}
