package quiz

import (
	"errors"
	"fmt"

	"github.com/m3rciful/tynys/internal/domain"
)

// Quiz keys.
const (
	KeyStress      = "stress"
	KeyPersonality = "personality"
	KeyMotivation  = "motivation"
	KeyCareer      = "career"
)

// Keys lists quizzes in menu order.
var Keys = []string{KeyStress, KeyPersonality, KeyMotivation, KeyCareer}

var catalogs = map[string]map[string]Definition{
	domain.LangKazakh:  kazakhQuizzes,
	domain.LangRussian: russianQuizzes,
}

// Lookup returns the definition of key in lang, falling back to Kazakh.
func Lookup(lang, key string) (Definition, bool) {
	if c, ok := catalogs[lang]; ok {
		if d, ok := c[key]; ok {
			return d, true
		}
	}
	d, ok := kazakhQuizzes[key]
	return d, ok
}

// ValidateCatalogs checks every definition of every language and that all
// languages share the same question counts. Called once at startup.
func ValidateCatalogs() error {
	var errs []error
	for lang, c := range catalogs {
		for _, key := range Keys {
			d, ok := c[key]
			if !ok {
				errs = append(errs, fmt.Errorf("%s: quiz %s missing", lang, key))
				continue
			}
			if err := d.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", lang, err))
			}
			if ref := kazakhQuizzes[key]; ref.Total() != d.Total() {
				errs = append(errs, fmt.Errorf("%s: quiz %s has %d questions, kk has %d", lang, key, d.Total(), ref.Total()))
			}
		}
	}
	if err := ValidateRanges(StressBands, 7); err != nil {
		errs = append(errs, fmt.Errorf("stress bands: %w", err))
	}
	return errors.Join(errs...)
}
