package odds

import "fmt"

// Rule requires at least Min cards drawn from the union of Categories.
type Rule struct {
	Name       string `json:"name" yaml:"name"`
	Categories []int  `json:"categories" yaml:"categories"`
	Min        int    `json:"min" yaml:"min"`
}

// Satisfied reports whether draw meets the rule.
func (r Rule) Satisfied(draw []int) bool {
	got := 0
	for _, c := range r.Categories {
		got += draw[c]
	}
	return got >= r.Min
}

// Validate checks the rule against a draw tuple of the given width
// (named categories plus "other").
func (r Rule) Validate(width int) error {
	if r.Min < 0 {
		return fmt.Errorf("%w: rule %q has negative minimum %d", ErrInvalidRule, r.Name, r.Min)
	}
	for _, c := range r.Categories {
		if c < 0 || c >= width {
			return fmt.Errorf("rule %q: %w %d", r.Name, ErrUnknownCategory, c)
		}
	}
	return nil
}

// AllOf is the conjunction of rules.
func AllOf(rules ...Rule) Predicate {
	return func(draw []int) bool {
		for _, r := range rules {
			if !r.Satisfied(draw) {
				return false
			}
		}
		return true
	}
}

// CoverRules expresses "at least one card of every group" as threshold rules.
func CoverRules(groups []Group) []Rule {
	rules := make([]Rule, 0, len(groups))
	for _, g := range groups {
		rules = append(rules, Rule{Name: g.Name, Categories: g.Categories, Min: 1})
	}
	return rules
}

// ValidateRules checks every rule for a deck with the given number of named
// categories.
func ValidateRules(categories int, rules []Rule) error {
	for _, r := range rules {
		if err := r.Validate(categories + 1); err != nil {
			return err
		}
	}
	return nil
}
