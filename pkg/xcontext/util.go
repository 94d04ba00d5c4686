package xcontext

import "context"

type errorKey struct{}

// requestState is shared by value through the context so that closers running
// after the handler can observe what it produced.
type requestState struct {
	err error
}

func WithRequestState(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, errorKey{}, &requestState{})
	return ctx
}

func SetError(ctx context.Context, err error) {
	if state, ok := ctx.Value(errorKey{}).(*requestState); ok {
		state.err = err
	}
}

func Error(ctx context.Context) error {
	if state, ok := ctx.Value(errorKey{}).(*requestState); ok {
		return state.err
	}

	return nil
}