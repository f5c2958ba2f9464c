// Package stats summarizes a user's recent check-ins.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/m3rciful/tynys/internal/domain"
)

// DefaultDays is the period covered by the weekly summary.
const DefaultDays = 7

// moodScores maps mood codes to the 1..5 scale used when a check-in has no
// explicit score.
var moodScores = map[string]float64{
	"great": 5,
	"fine":  4,
	"okay":  3,
	"bad":   2,
	"tired": 2,
	"angry": 1,
}

const defaultMoodScore = 3

// Source lists check-ins of a user created at or after since.
type Source interface {
	CheckInsSince(ctx context.Context, userID int64, since time.Time) ([]domain.CheckIn, error)
}

// DayAverage is the mean score of one UTC calendar day.
type DayAverage struct {
	Day     time.Time
	Average float64
}

// Summary is the aggregate of a window of check-ins.
type Summary struct {
	Count     int
	Average   float64
	TopCauses []string
	BestDay   DayAverage
	WorstDay  DayAverage
}

// Aggregator computes summaries from a Source.
type Aggregator struct {
	source Source
	window time.Duration
	now    func() time.Time
}

// NewAggregator returns an aggregator over the last days days. A
// non-positive value means DefaultDays.
func NewAggregator(source Source, days int) *Aggregator {
	if days <= 0 {
		days = DefaultDays
	}
	return &Aggregator{source: source, window: time.Duration(days) * 24 * time.Hour, now: time.Now}
}

// SetClock replaces the clock, used in tests.
func (a *Aggregator) SetClock(now func() time.Time) {
	a.now = now
}

// WeeklySummary summarizes the check-ins of the configured window. ok is
// false when there are none.
func (a *Aggregator) WeeklySummary(ctx context.Context, userID int64) (Summary, bool, error) {
	since := a.now().UTC().Add(-a.window)
	records, err := a.source.CheckInsSince(ctx, userID, since)
	if err != nil {
		return Summary{}, false, fmt.Errorf("list checkins: %w", err)
	}
	if len(records) == 0 {
		return Summary{}, false, nil
	}
	return Summarize(records), true, nil
}

// Score is the value a check-in contributes to averages: the explicit mood
// score when present, otherwise the mapped mood.
func Score(c domain.CheckIn) float64 {
	if c.MoodScore != nil {
		return float64(*c.MoodScore)
	}
	if v, ok := moodScores[c.Mood]; ok {
		return v
	}
	return defaultMoodScore
}

// Summarize aggregates records, which must be non-empty. The output depends
// only on the records, not on their order within a day.
func Summarize(records []domain.CheckIn) Summary {
	var total float64
	causeCounts := make(map[string]int)
	var causeOrder []string

	type dayAcc struct {
		sum float64
		n   int
	}
	days := make(map[time.Time]*dayAcc)
	var dayOrder []time.Time

	for _, c := range records {
		s := Score(c)
		total += s

		if _, seen := causeCounts[c.Cause]; !seen {
			causeOrder = append(causeOrder, c.Cause)
		}
		causeCounts[c.Cause]++

		t := c.CreatedAt.UTC()
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		acc, ok := days[day]
		if !ok {
			acc = &dayAcc{}
			days[day] = acc
			dayOrder = append(dayOrder, day)
		}
		acc.sum += s
		acc.n++
	}

	sum := Summary{
		Count:   len(records),
		Average: total / float64(len(records)),
	}

	maxCount := 0
	for _, cause := range causeOrder {
		if n := causeCounts[cause]; n > maxCount {
			maxCount = n
		}
	}
	for _, cause := range causeOrder {
		if causeCounts[cause] == maxCount {
			sum.TopCauses = append(sum.TopCauses, cause)
		}
	}

	first := true
	for _, day := range dayOrder {
		avg := days[day].sum / float64(days[day].n)
		cur := DayAverage{Day: day, Average: avg}
		if first {
			sum.BestDay, sum.WorstDay = cur, cur
			first = false
			continue
		}
		if avg > sum.BestDay.Average || (avg == sum.BestDay.Average && day.Before(sum.BestDay.Day)) {
			sum.BestDay = cur
		}
		if avg < sum.WorstDay.Average || (avg == sum.WorstDay.Average && day.Before(sum.WorstDay.Day)) {
			sum.WorstDay = cur
		}
	}
	return sum
}
