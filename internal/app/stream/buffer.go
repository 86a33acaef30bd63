package stream

import (
	"opsdash/internal/app/errors"
)

// Buffer is an insertion-ordered, capped sequence of records.
// Operations return a new Buffer and never touch the backing array of an existing one.
// A zero Buffer has no capacity and drops every record.
type Buffer struct {
	records  []Record
	capacity int
}

// NewBuffer creates an empty buffer with the given capacity, optionally seeded
func NewBuffer(capacity int, seed ...Record) (Buffer, error) {
	if capacity <= 0 {
		return Buffer{}, errors.ErrInvalidCapacity
	}

	buf := Buffer{
		records:  make([]Record, 0),
		capacity: capacity,
	}

	for _, rec := range seed {
		buf = Append(buf, rec)
	}

	return buf, nil
}

// Append returns a buffer with rec added last, evicting the oldest entries over capacity
func Append(buf Buffer, rec Record) Buffer {
	if buf.capacity <= 0 {
		return buf
	}

	size := len(buf.records) + 1
	start := 0

	if size > buf.capacity {
		start = size - buf.capacity
		size = buf.capacity
	}

	next := make([]Record, 0, size)
	next = append(next, buf.records[start:]...)
	next = append(next, rec)

	return Buffer{records: next, capacity: buf.capacity}
}

// Clear returns an empty buffer with the same capacity
func (b Buffer) Clear() Buffer {
	return Buffer{records: make([]Record, 0), capacity: b.capacity}
}

// Records returns a copy of the records, oldest first
func (b Buffer) Records() []Record {
	out := make([]Record, len(b.records))
	copy(out, b.records)

	return out
}

// Len returns the number of records held
func (b Buffer) Len() int {
	return len(b.records)
}

// Cap returns the maximum number of records held
func (b Buffer) Cap() int {
	return b.capacity
}
