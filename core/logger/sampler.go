package logger

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// ratioSampler lets through num out of every den events. A zero ratio lets
// everything through.
type ratioSampler struct {
	num, den int64
	counter  atomic.Int64
}

func newRatioSampler(ratio string) *ratioSampler {
	num, den := parseRatio(ratio)
	if num > den {
		num = den
	}
	return &ratioSampler{num: num, den: den}
}

func (s *ratioSampler) Allow() bool {
	if s == nil || s.num <= 0 || s.den <= 0 {
		return true
	}
	n := s.counter.Add(1) - 1
	return n%s.den < s.num
}

// parseRatio accepts "n/d", "d" (meaning 1/d) or "0" to disable sampling.
// Empty or malformed input selects 1/50.
func parseRatio(ratio string) (int64, int64) {
	ratio = strings.TrimSpace(ratio)
	if ratio == "" {
		return 1, 50
	}
	if a, b, ok := strings.Cut(ratio, "/"); ok {
		num, err1 := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
		den, err2 := strconv.ParseInt(strings.TrimSpace(b), 10, 64)
		if err1 != nil || err2 != nil || num < 0 || den < 0 {
			return 1, 50
		}
		return num, den
	}
	v, err := strconv.ParseInt(ratio, 10, 64)
	switch {
	case err != nil || v < 0:
		return 1, 50
	case v == 0:
		return 0, 0
	}
	return 1, v
}
