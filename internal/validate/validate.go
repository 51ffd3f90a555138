// Package validate implements the per-field rules demos attach to their
// form fields. Rules are static per entity type; a failing check never
// reaches the collection.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Rule declares the constraints for one field. Zero-value fields are
// skipped, so a Rule{} accepts anything.
type Rule struct {
	Required bool     `yaml:"required,omitempty"`
	MinLen   int      `yaml:"min_len,omitempty"`
	MaxLen   int      `yaml:"max_len,omitempty"`
	Pattern  string   `yaml:"pattern,omitempty"`
	Positive bool     `yaml:"positive,omitempty"`
	Min      *float64 `yaml:"min,omitempty"`
	Max      *float64 `yaml:"max,omitempty"`
}

// Check validates a raw input value against the rule. numeric reports
// whether the field holds a number (range rules only apply then). A nil
// return means the value passes every rule.
func (r Rule) Check(label, raw string, numeric bool) error {
	value := strings.TrimSpace(raw)
	if value == "" {
		if r.Required {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
	if r.MinLen > 0 && len([]rune(value)) < r.MinLen {
		return fmt.Errorf("%s must be at least %d characters", label, r.MinLen)
	}
	if r.MaxLen > 0 && len([]rune(value)) > r.MaxLen {
		return fmt.Errorf("%s must be at most %d characters", label, r.MaxLen)
	}
	if r.Pattern != "" {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return fmt.Errorf("%s has an invalid pattern rule", label)
		}
		if !re.MatchString(value) {
			return fmt.Errorf("%s has an invalid format", label)
		}
	}
	if !numeric {
		return nil
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%s must be a number", label)
	}
	if r.Positive && n <= 0 {
		return fmt.Errorf("%s must be greater than zero", label)
	}
	if r.Min != nil && n < *r.Min {
		return fmt.Errorf("%s must be at least %v", label, *r.Min)
	}
	if r.Max != nil && n > *r.Max {
		return fmt.Errorf("%s must be at most %v", label, *r.Max)
	}
	return nil
}

// Validate ensures the rule itself is well-formed, so malformed demo
// definitions are rejected at load time rather than at first keystroke.
func (r Rule) Validate() error {
	if r.MinLen < 0 || r.MaxLen < 0 {
		return fmt.Errorf("length bounds must not be negative")
	}
	if r.MaxLen > 0 && r.MinLen > r.MaxLen {
		return fmt.Errorf("min_len %d exceeds max_len %d", r.MinLen, r.MaxLen)
	}
	if r.Pattern != "" {
		if _, err := regexp.Compile(r.Pattern); err != nil {
			return fmt.Errorf("pattern: %w", err)
		}
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return fmt.Errorf("min %v exceeds max %v", *r.Min, *r.Max)
	}
	return nil
}
