package texts

import "strings"

// Action is what a main-menu button does.
type Action string

// Menu actions.
const (
	ActionCheckin         Action = "checkin"
	ActionStats           Action = "stats"
	ActionStressTest      Action = "stress_test"
	ActionQuizStress      Action = "quiz:stress"
	ActionQuizPersonality Action = "quiz:personality"
	ActionQuizMotivation  Action = "quiz:motivation"
	ActionQuizCareer      Action = "quiz:career"
	ActionPanic           Action = "panic"
	ActionBreath          Action = "breath"
	ActionChat            Action = "chat"
	ActionQuote           Action = "quote"
	ActionLanguage        Action = "language"
)

const quizActionPrefix = "quiz:"

// QuizKey returns the quiz started by the action, if any.
func (a Action) QuizKey() (string, bool) {
	return strings.CutPrefix(string(a), quizActionPrefix)
}

// MenuItem is a main-menu button.
type MenuItem struct {
	Label  string
	Action Action
}

// MenuRows returns the main-menu labels in rows.
func MenuRows(lang string) [][]string {
	menu := lookup(lang).menu
	rows := make([][]string, len(menu))
	for i, row := range menu {
		for _, item := range row {
			rows[i] = append(rows[i], item.Label)
		}
	}
	return rows
}

var menuIndex = func() map[string]Action {
	idx := make(map[string]Action)
	for _, t := range tables {
		for _, row := range t.menu {
			for _, item := range row {
				idx[item.Label] = item.Action
			}
		}
	}
	return idx
}()

// MenuAction maps a button label in any language to its action. Labels work
// regardless of the user's current language so a stale keyboard still works.
func MenuAction(label string) (Action, bool) {
	a, ok := menuIndex[strings.TrimSpace(label)]
	return a, ok
}
