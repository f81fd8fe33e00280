package aggregate

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome is the settled result of one fetch started by AllSettled.
type Outcome[I, T any] struct {
	Input I
	Value T
	Err   error
}

func (o Outcome[I, T]) OK() bool {
	return o.Err == nil
}

// AllSettled calls fetch once per input, concurrently, and returns after every
// call has returned. outcomes[i] always belongs to inputs[i]. A failing fetch
// never cancels the others. limit bounds the number of calls in flight; 0
// means no bound.
func AllSettled[I, T any](ctx context.Context, inputs []I, limit int, fetch func(context.Context, I) (T, error)) []Outcome[I, T] {
	outcomes := make([]Outcome[I, T], len(inputs))

	// Plain Group, not WithContext: one failure must not cancel the rest.
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			value, err := fetch(ctx, input)
			outcomes[i] = Outcome[I, T]{Input: input, Value: value, Err: err}
			return nil
		})
	}

	_ = g.Wait()

	return outcomes
}

// Successes returns the values of the successful outcomes, in input order.
func Successes[I, T any](outcomes []Outcome[I, T]) []T {
	values := make([]T, 0, len(outcomes))
	for _, o := range outcomes {
		if o.OK() {
			values = append(values, o.Value)
		}
	}

	return values
}

// Failures returns the failed outcomes, in input order.
func Failures[I, T any](outcomes []Outcome[I, T]) []Outcome[I, T] {
	var failed []Outcome[I, T]
	for _, o := range outcomes {
		if !o.OK() {
			failed = append(failed, o)
		}
	}

	return failed
}
