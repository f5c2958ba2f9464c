package quiz

// Stress level codes stored with stress test results.
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// StressBands classifies the 7-question stress test. They are distinct from
// the ranges of the 10-question stress quiz.
var StressBands = []Range{
	{Max: 2, Level: LevelLow},
	{Max: 5, Level: LevelMedium},
	{Max: 7, Level: LevelHigh},
}
