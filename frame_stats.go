package glassfx

import (
	"time"
)

// CircularQueue keeps the last len(Data) items, dropping the oldest when full.
type CircularQueue[T any] struct {
	End    int
	Start  int
	Length int
	Data   []T
}

func NewCircularQueue[T any](size int) CircularQueue[T] {
	return CircularQueue[T]{
		Data: make([]T, size),
	}
}

func (q *CircularQueue[T]) IsFull() bool {
	return q.Length >= len(q.Data)
}

func (q *CircularQueue[T]) IsEmpty() bool {
	return q.Length <= 0
}

func (q *CircularQueue[T]) Enqueue(item T) {
	index := q.End

	if q.IsFull() {
		q.Start = (q.Start + 1) % len(q.Data)
	} else {
		q.Length += 1
	}
	q.End = (q.End + 1) % len(q.Data)

	q.Data[index] = item
}

// At returns the index-th oldest item.
func (q *CircularQueue[T]) At(index int) T {
	return q.Data[(q.Start+index)%len(q.Data)]
}

func (q *CircularQueue[T]) PeekLast() T {
	return q.Data[(q.End-1+len(q.Data))%len(q.Data)]
}

func (q *CircularQueue[T]) Clear() {
	q.Length = 0
	q.Start = 0
	q.End = 0
}

// FrameStats remembers how long the last frames took.
type FrameStats struct {
	times CircularQueue[time.Duration]
}

func NewFrameStats(frames int) *FrameStats {
	return &FrameStats{times: NewCircularQueue[time.Duration](frames)}
}

func (fs *FrameStats) Record(d time.Duration) {
	fs.times.Enqueue(d)
}

// Average is the mean frame time over the remembered frames.
func (fs *FrameStats) Average() time.Duration {
	if fs.times.IsEmpty() {
		return 0
	}
	var sum time.Duration
	for i := range fs.times.Length {
		sum += fs.times.At(i)
	}
	return sum / time.Duration(fs.times.Length)
}

// Worst is the longest remembered frame.
func (fs *FrameStats) Worst() time.Duration {
	var worst time.Duration
	for i := range fs.times.Length {
		worst = max(worst, fs.times.At(i))
	}
	return worst
}

func (fs *FrameStats) Reset() {
	fs.times.Clear()
}
