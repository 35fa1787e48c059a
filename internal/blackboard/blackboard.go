// Package blackboard resolves parameterized description templates against the named
// numeric values ("blackboard") attached to one skill level or trait tier.
package blackboard

import (
	"math"
	"strconv"
)

// Entry is one named value on a blackboard
type Entry struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// Blackboard is the ordered parameter set bound to one description instance.
// When a key repeats, the last entry wins.
type Blackboard []Entry

// Lookup returns the value stored under name, honoring last-wins on duplicates.
// The name is matched exactly; Resolve normalizes placeholder keys before calling it.
func (b Blackboard) Lookup(name string) (float64, bool) {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i].Key == name {
			return b[i].Value, true
		}
	}
	return 0, false
}

// FormatNumber renders v without a fractional part when it has none,
// otherwise in its shortest decimal form.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
