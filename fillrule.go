package pathkit

import "fmt"

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleWinding uses the non-zero winding rule: a point is
	// inside if the contours wind around it a net non-zero number of
	// times.
	FillRuleWinding FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule: a point is inside if a
	// ray from it crosses the contours an odd number of times.
	FillRuleEvenOdd
)

// String returns the rule's name as accepted by ParseFillRule.
func (f FillRule) String() string {
	switch f {
	case FillRuleWinding:
		return "winding"
	case FillRuleEvenOdd:
		return "even-odd"
	}
	return fmt.Sprintf("FillRule(%d)", int(f))
}

// ParseFillRule parses a fill rule name. Accepted values are "winding"
// (alias "nonzero") and "even-odd" (alias "evenodd").
func ParseFillRule(s string) (FillRule, error) {
	switch s {
	case "winding", "nonzero":
		return FillRuleWinding, nil
	case "even-odd", "evenodd":
		return FillRuleEvenOdd, nil
	}
	return 0, fmt.Errorf("pathkit: unknown fill rule %q", s)
}
