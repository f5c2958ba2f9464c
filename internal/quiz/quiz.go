// Package quiz defines yes/no questionnaires and how a final score maps to a
// result level.
package quiz

import (
	"errors"
	"fmt"
)

// ErrNoRange is returned when a score exceeds every range of a definition.
var ErrNoRange = errors.New("quiz: score outside configured ranges")

// Range is an inclusive upper bound with the level and advice it yields.
type Range struct {
	Max    int
	Level  string
	Advice string
}

// Definition is a static questionnaire.
type Definition struct {
	Key       string
	Title     string
	Badge     string
	Questions []string
	Ranges    []Range
}

// Header is the badge followed by the title.
func (d Definition) Header() string {
	if d.Badge == "" {
		return d.Title
	}
	return d.Badge + " " + d.Title
}

// Total is the number of questions.
func (d Definition) Total() int {
	return len(d.Questions)
}

// Classify returns the first range whose bound is at least score.
func (d Definition) Classify(score int) (Range, error) {
	return Classify(d.Ranges, score)
}

// Validate checks that the definition has questions and that its ranges are
// strictly ascending, start at a non-negative bound and end exactly at the
// question count.
func (d Definition) Validate() error {
	if d.Key == "" {
		return errors.New("quiz: empty key")
	}
	if len(d.Questions) == 0 {
		return fmt.Errorf("quiz %s: no questions", d.Key)
	}
	if err := ValidateRanges(d.Ranges, len(d.Questions)); err != nil {
		return fmt.Errorf("quiz %s: %w", d.Key, err)
	}
	return nil
}

// Classify finds the first range whose Max is at least score.
func Classify(ranges []Range, score int) (Range, error) {
	for _, r := range ranges {
		if score <= r.Max {
			return r, nil
		}
	}
	return Range{}, fmt.Errorf("%w: score %d", ErrNoRange, score)
}

// ValidateRanges checks ranges cover 0..total without gaps.
func ValidateRanges(ranges []Range, total int) error {
	if len(ranges) == 0 {
		return errors.New("no ranges")
	}
	prev := -1
	for i, r := range ranges {
		if r.Max <= prev {
			return fmt.Errorf("range %d: bound %d not above %d", i, r.Max, prev)
		}
		if r.Level == "" {
			return fmt.Errorf("range %d: empty level", i)
		}
		prev = r.Max
	}
	if prev != total {
		return fmt.Errorf("last bound %d, want %d", prev, total)
	}
	return nil
}
