package blackboard_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/operator-codex/internal/blackboard"
)

type ResolveTestSuite struct {
	suite.Suite
}

func TestResolveSuite(t *testing.T) {
	suite.Run(t, new(ResolveTestSuite))
}

func (s *ResolveTestSuite) TestResolve() {
	testCases := []struct {
		name     string
		bb       blackboard.Blackboard
		template string
		expected string
	}{
		{
			name:     "no placeholders returns stripped input",
			bb:       blackboard.Blackboard{{Key: "atk", Value: 0.5}},
			template: "Attacks <@ba.kw>twice</>",
			expected: "Attacks twice",
		},
		{
			name:     "integral value renders without fraction",
			bb:       blackboard.Blackboard{{Key: "duration", Value: 10}},
			template: "Lasts {duration} seconds",
			expected: "Lasts 10 seconds",
		},
		{
			name:     "fractional value renders in natural form",
			bb:       blackboard.Blackboard{{Key: "scale", Value: 1.5}},
			template: "Deals {scale}x damage",
			expected: "Deals 1.5x damage",
		},
		{
			name:     "percent formatter",
			bb:       blackboard.Blackboard{{Key: "atk", Value: 0.35}},
			template: "ATK <@ba.vup>+{atk:0%}</>",
			expected: "ATK +35%",
		},
		{
			name:     "percent formatter rounds half to even",
			bb:       blackboard.Blackboard{{Key: "sp", Value: 0.125}},
			template: "{sp:0%}",
			expected: "12%",
		},
		{
			name:     "percent formatter rounds odd ties up",
			bb:       blackboard.Blackboard{{Key: "sp", Value: 0.135}},
			template: "{sp:0%}",
			expected: "14%",
		},
		{
			name:     "repeated key resolves to the last entry",
			bb:       blackboard.Blackboard{{Key: "atk", Value: 0.1}, {Key: "atk", Value: 0.2}},
			template: "ATK +{atk:0%}",
			expected: "ATK +20%",
		},
		{
			name:     "unknown formatter falls back to raw value",
			bb:       blackboard.Blackboard{{Key: "atk", Value: 0.35}},
			template: "{atk:0.0}",
			expected: "0.35",
		},
		{
			name:     "missing key is left untouched",
			bb:       blackboard.Blackboard{{Key: "atk", Value: 0.35}},
			template: "ATK +{atk:0%}, DEF +{def:0%}",
			expected: "ATK +35%, DEF +{def:0%}",
		},
		{
			name:     "key is lowercased before lookup",
			bb:       blackboard.Blackboard{{Key: "attack@atk_scale", Value: 2.2}},
			template: "{ATTACK@atk_scale:0%}",
			expected: "220%",
		},
		{
			name:     "leading hyphens are dropped from the key",
			bb:       blackboard.Blackboard{{Key: "def", Value: -0.3}},
			template: "DEF -{-def:0%}",
			expected: "DEF --30%",
		},
		{
			name:     "stored keys are not normalized",
			bb:       blackboard.Blackboard{{Key: "ATK", Value: 1}},
			template: "{atk}",
			expected: "{atk}",
		},
		{
			name:     "every occurrence is replaced",
			bb:       blackboard.Blackboard{{Key: "cnt", Value: 3}},
			template: "{cnt} hits, then {cnt} more",
			expected: "3 hits, then 3 more",
		},
		{
			name: "last duplicate wins",
			bb: blackboard.Blackboard{
				{Key: "atk", Value: 0.1},
				{Key: "atk", Value: 0.2},
			},
			template: "{atk:0%}",
			expected: "20%",
		},
		{
			name:     "literal newline escape passes through",
			bb:       blackboard.Blackboard{{Key: "hp", Value: 100}},
			template: `heals {hp}\nonce`,
			expected: `heals 100\nonce`,
		},
		{
			name:     "placeholder with whitespace is not a placeholder",
			bb:       blackboard.Blackboard{{Key: "a", Value: 1}},
			template: "{a b}",
			expected: "{a b}",
		},
		{
			name:     "empty blackboard",
			bb:       nil,
			template: "{atk:0%}",
			expected: "{atk:0%}",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, blackboard.Resolve(tc.bb, tc.template))
		})
	}
}

func (s *ResolveTestSuite) TestResolveIsIdempotent() {
	bb := blackboard.Blackboard{{Key: "atk", Value: 0.5}}
	once := blackboard.Resolve(bb, "ATK <@ba.vup>+{atk:0%}</>")

	s.Equal(once, blackboard.Resolve(bb, once))
}

func (s *ResolveTestSuite) TestFormatNumber() {
	s.Equal("5", blackboard.FormatNumber(5.0))
	s.Equal("-2", blackboard.FormatNumber(-2.0))
	s.Equal("0.125", blackboard.FormatNumber(0.125))
	s.Equal("0", blackboard.FormatNumber(0))
}

func (s *ResolveTestSuite) TestPercent() {
	s.Equal("12%", blackboard.Percent(0.125))
	s.Equal("-12%", blackboard.Percent(-0.125))
	s.Equal("2%", blackboard.Percent(0.025))
	s.Equal("7%", blackboard.Percent(0.07))
	s.Equal("100%", blackboard.Percent(1))
}

func (s *ResolveTestSuite) TestLookup() {
	bb := blackboard.Blackboard{
		{Key: "atk", Value: 0.1},
		{Key: "def", Value: 0.3},
		{Key: "atk", Value: 0.2},
	}

	v, ok := bb.Lookup("atk")
	s.True(ok)
	s.Equal(0.2, v)

	_, ok = bb.Lookup("hp")
	s.False(ok)
}

func (s *ResolveTestSuite) TestDecodeRawBlackboard() {
	raw := `[{"key":"atk","value":0.25,"valueStr":null},{"key":"times","value":3.0}]`

	var bb blackboard.Blackboard
	s.Require().NoError(json.Unmarshal([]byte(raw), &bb))

	s.Equal("ATK +25% x3", blackboard.Resolve(bb, "ATK +{atk:0%} x{times}"))
}
