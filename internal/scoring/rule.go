// Package scoring computes points for words found on a board. The points for
// a single word come from an arithmetic rule over the word's length and the
// game's minimum length, so variants can be configured without code changes.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/Knetic/govaluate"
	"github.com/shopspring/decimal"

	"git.sr.ht/~jakintosh/wordhunt/internal/core"
)

// Rule variables available to an expression.
const (
	VarLength  = "length"
	VarMinimum = "minimum"
)

const (
	// DefaultExpression awards one point for the minimum length and one for
	// each letter beyond it.
	DefaultExpression = "length - minimum + 1"

	// ClassicExpression is the tabletop table: 3-4 letters 1, 5 letters 2,
	// 6 letters 3, 7 letters 5, 8 or more 11.
	ClassicExpression = "length >= 8 ? 11 : (length == 7 ? 5 : (length == 6 ? 3 : (length == 5 ? 2 : 1)))"
)

var presets = map[string]string{
	"default": DefaultExpression,
	"classic": ClassicExpression,
}

// Rule turns a word length into points.
type Rule struct {
	source     string
	expression *govaluate.EvaluableExpression
}

// DefaultRule returns the rule for DefaultExpression.
func DefaultRule() *Rule {
	rule, err := NewRule(DefaultExpression)
	if err != nil {
		panic(err)
	}
	return rule
}

// NewRule compiles an expression, or a preset name such as "classic".
func NewRule(expr string) (*Rule, error) {
	source := strings.TrimSpace(expr)
	if source == "" {
		return nil, fmt.Errorf("empty scoring rule: %w", core.ErrInvalidArgument)
	}
	if preset, ok := presets[strings.ToLower(source)]; ok {
		source = preset
	}

	expression, err := govaluate.NewEvaluableExpression(source)
	if err != nil {
		return nil, fmt.Errorf("invalid scoring rule %q: %v: %w", source, err, core.ErrInvalidArgument)
	}
	for _, v := range expression.Vars() {
		if v != VarLength && v != VarMinimum {
			return nil, fmt.Errorf("scoring rule uses unknown variable %q: %w", v, core.ErrInvalidArgument)
		}
	}

	return &Rule{source: source, expression: expression}, nil
}

// String returns the expression the rule evaluates.
func (r *Rule) String() string {
	return r.source
}

// Points evaluates the rule for one word. Fractions are truncated.
func (r *Rule) Points(length, minimum int) (int, error) {
	result, err := r.expression.Evaluate(map[string]interface{}{
		VarLength:  float64(length),
		VarMinimum: float64(minimum),
	})
	if err != nil {
		return 0, fmt.Errorf("evaluation error: %w", err)
	}

	var points decimal.Decimal
	switch v := result.(type) {
	case float64:
		if math.IsNaN(v) {
			return 0, fmt.Errorf("result is not a number (NaN)")
		}
		if math.IsInf(v, 0) {
			return 0, fmt.Errorf("result is infinite")
		}
		points = decimal.NewFromFloat(v)
	case int:
		points = decimal.NewFromInt(int64(v))
	case int64:
		points = decimal.NewFromInt(v)
	default:
		return 0, fmt.Errorf("scoring rule %q produced %T, not a number", r.source, result)
	}

	if points.IsNegative() {
		return 0, fmt.Errorf("scoring rule %q produced negative points %s", r.source, points.String())
	}
	return int(points.IntPart()), nil
}
