// Package texts holds the localized message tables of the bot. Lookups never
// fail: a key missing in the requested language falls back to Kazakh, then to
// the key itself.
package texts

import (
	"fmt"
	"math/rand"

	"github.com/m3rciful/tynys/internal/domain"
)

// Key names a single localized message.
type Key string

// Message keys.
const (
	StartPrompt        Key = "start_prompt"
	Greeting           Key = "greeting"
	CheckinPrompt      Key = "checkin_prompt"
	CheckinThanks      Key = "checkin_thanks"
	ChooseOption       Key = "choose_option"
	StepOver           Key = "step_over"
	RetryLater         Key = "retry_later"
	SaveFailed         Key = "save_failed"
	QuizIntro          Key = "quiz_intro"
	QuizInProgress     Key = "quiz_in_progress"
	QuizCompleted      Key = "quiz_completed"
	QuizUsage          Key = "quiz_usage"
	UnknownQuiz        Key = "unknown_quiz"
	ScoreLabel         Key = "score_label"
	ResultLabel        Key = "result_label"
	AdviceLabel        Key = "advice_label"
	StressIntro        Key = "stress_intro"
	StressCompleted    Key = "stress_completed"
	StressScoreLabel   Key = "stress_score_label"
	StressLevelLabel   Key = "stress_level_label"
	StressHistoryTitle Key = "stress_history_title"
	StressHistoryEmpty Key = "stress_history_empty"
	StatsEmpty         Key = "stats_empty"
	StatsTitle         Key = "stats_title"
	StatsCount         Key = "stats_count"
	StatsAverage       Key = "stats_average"
	StatsTriggers      Key = "stats_triggers"
	StatsBestDay       Key = "stats_best_day"
	StatsWorstDay      Key = "stats_worst_day"
	MoodUsage          Key = "mood_usage"
	MoodInteger        Key = "mood_integer"
	MoodRange          Key = "mood_range"
	MoodSaved          Key = "mood_saved"
	LanguagePrompt     Key = "language_prompt"
	LanguageUpdated    Key = "language_updated"
	ChatStarted        Key = "chat_started"
	ChatStopped        Key = "chat_stopped"
	ChatFallback       Key = "chat_fallback"
	ChatRequired       Key = "chat_required"
	PanicIntro         Key = "panic_intro"
	BreathIntro        Key = "breath_intro"
	GroundingIntro     Key = "grounding_intro"
	SelfcareIntro      Key = "selfcare_intro"
	JournalIntro       Key = "journal_intro"
	FAQIntro           Key = "faq_intro"
	Safety             Key = "safety"
	UnknownCommand     Key = "unknown_command"
	UnknownMedia       Key = "unknown_media"
	RateLimited        Key = "rate_limited"
	BackToMenu         Key = "back_to_menu"
	AdminOnly          Key = "admin_only"
	CauseScale         Key = "cause_scale"
	TriggersEmpty      Key = "triggers_empty"
)

// ListKey names a localized ordered list.
type ListKey string

// List keys.
const (
	StressQuestions     ListKey = "stress_questions"
	PanicBreathingSteps ListKey = "panic_breathing_steps"
	GroundingSteps      ListKey = "grounding_steps"
	BreathSteps         ListKey = "breath_steps"
	SelfcareTasks       ListKey = "selfcare_tasks"
	JournalQuestions    ListKey = "journal_questions"
	FAQItems            ListKey = "faq_items"
	Quotes              ListKey = "quotes"
)

// Option is a selectable value with its localized label.
type Option struct {
	Value string
	Label string
}

type table struct {
	messages map[Key]string
	lists    map[ListKey][]string
	moods    []Option
	causes   []Option
	answers  []Option
	levels   map[string]string
	menu     [][]MenuItem
}

var tables = map[string]*table{
	domain.LangKazakh:  kazakh,
	domain.LangRussian: russian,
}

func lookup(lang string) *table {
	if t, ok := tables[lang]; ok {
		return t
	}
	return tables[domain.LangKazakh]
}

// Get returns the message for key in lang.
func Get(lang string, key Key) string {
	if s, ok := lookup(lang).messages[key]; ok {
		return s
	}
	if s, ok := kazakh.messages[key]; ok {
		return s
	}
	return string(key)
}

// Format renders a message template with fmt verbs.
func Format(lang string, key Key, args ...any) string {
	return fmt.Sprintf(Get(lang, key), args...)
}

// List returns a copy of the localized list.
func List(lang string, key ListKey) []string {
	l, ok := lookup(lang).lists[key]
	if !ok {
		l = kazakh.lists[key]
	}
	return append([]string(nil), l...)
}

// Moods returns the mood options in display order.
func Moods(lang string) []Option { return lookup(lang).moods }

// Causes returns the cause options in display order.
func Causes(lang string) []Option { return lookup(lang).causes }

// Answers returns the yes/no options.
func Answers(lang string) []Option { return lookup(lang).answers }

// Label finds the label of value among opts, or returns value unchanged.
func Label(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// Has reports whether value is one of opts.
func Has(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

// CauseLabel labels a stored cause, including the mood-scale marker.
func CauseLabel(lang, cause string) string {
	if cause == domain.MoodScale {
		return Get(lang, CauseScale)
	}
	return Label(Causes(lang), cause)
}

// StressLevel renders a stored level code (low, medium, high).
func StressLevel(lang, code string) string {
	if s, ok := lookup(lang).levels[code]; ok {
		return s
	}
	return code
}

// LanguageLabel is the self-name of a language, shown on the picker.
func LanguageLabel(code string) string {
	switch code {
	case domain.LangRussian:
		return "🇷🇺 Русский"
	default:
		return "🇰🇿 Қазақша"
	}
}

// Quote picks a random supportive quote.
func Quote(lang string) string {
	q := lookup(lang).lists[Quotes]
	if len(q) == 0 {
		return ""
	}
	return q[rand.Intn(len(q))]
}
