// Package gamedata contains typed views of the raw game tables.
// Fields mirror the upstream JSON keys; only the fields the aggregator reads are decoded.
package gamedata

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/KirkDiggler/operator-codex/internal/errors"
)

// EvolvePhase is a promotion index. Older table dumps store it as a number,
// newer ones as "PHASE_n"; both decode to n.
type EvolvePhase int

// UnmarshalJSON accepts 2 and "PHASE_2"
func (p *EvolvePhase) UnmarshalJSON(data []byte) error {
	n, err := decodePrefixedInt(data, "PHASE_")
	if err != nil {
		return errors.Wrap(err, "invalid evolve phase")
	}
	*p = EvolvePhase(n)
	return nil
}

// Rarity is the star count (1-6). Older dumps store a 0-based number,
// newer ones "TIER_n" with n already 1-based.
type Rarity int

// UnmarshalJSON accepts 5 (meaning six stars) and "TIER_6"
func (r *Rarity) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		n, err := decodePrefixedInt(data, "TIER_")
		if err != nil {
			return errors.Wrap(err, "invalid rarity")
		}
		*r = Rarity(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "invalid rarity")
	}
	*r = Rarity(n + 1)
	return nil
}

// Enum holds an upstream enumeration that is numeric in older dumps and
// symbolic in newer ones (skillType, spType). Numbers keep their decimal text.
type Enum string

// UnmarshalJSON accepts numbers, strings and null
func (e *Enum) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*e = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = Enum(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*e = Enum(n.String())
	}
	return nil
}

func decodePrefixedInt(data []byte, prefix string) (int, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return 0, nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, err
		}
		return strconv.Atoi(strings.TrimPrefix(s, prefix))
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return 0, err
	}
	return n, nil
}
