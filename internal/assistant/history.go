package assistant

import "github.com/m3rciful/tynys/internal/domain"

// HistoryLimit is the number of turns kept in the chat window.
const HistoryLimit = 20

// AppendHistory appends turns to history and drops the oldest entries beyond
// HistoryLimit. The input slice is not modified.
func AppendHistory(history []domain.Turn, turns ...domain.Turn) []domain.Turn {
	out := make([]domain.Turn, 0, len(history)+len(turns))
	out = append(out, history...)
	out = append(out, turns...)
	if n := len(out) - HistoryLimit; n > 0 {
		out = append([]domain.Turn(nil), out[n:]...)
	}
	return out
}
