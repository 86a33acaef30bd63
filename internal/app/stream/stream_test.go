package stream

import (
	"time"
)

// stubRandom returns a fixed sequence, wrapping around and reducing modulo n
type stubRandom struct {
	values []int
	pos    int
}

func newStubRandom(values ...int) *stubRandom {
	return &stubRandom{values: values}
}

func (s *stubRandom) IntN(n int) int {
	if len(s.values) == 0 {
		return 0
	}

	v := s.values[s.pos%len(s.values)]
	s.pos++

	return v % n
}

var baseTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func rec(level Level, msg string) Record {
	return Record{Timestamp: baseTime, Level: level, Message: msg}
}

func messages(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Message)
	}

	return out
}
