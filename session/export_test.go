package session

import "time"

func WithClock[T any](now func() time.Time) Option[T] {
	return withClock[T](now)
}
