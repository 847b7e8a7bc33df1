package formkit

import (
	"context"
	"errors"
	"fmt"
)

// ErrUserHandler wraps any failure raised by the user-provided submit
// handler. The form does not attempt recovery; the wrapped error carries the
// original cause.
var ErrUserHandler = errors.New("error happened executing the user-provided submit handler")

// SubmitHandler receives the complete form values once validation passes.
type SubmitHandler func(ctx context.Context, values map[string]any) error

// Submit validates the whole form and, only when every field passes, runs the
// user-provided handler with a snapshot of the values. An invalid form
// returns the field errors and no error; the handler is not called. A handler
// failure (returned error or panic) comes back wrapped in ErrUserHandler.
func (f *Form) Submit(ctx context.Context, handler SubmitHandler) (FieldErrors, error) {
	errs, err := f.Validate()
	if err != nil {
		return nil, err
	}
	if !errs.IsEmpty() {
		return errs, nil
	}
	if handler == nil {
		return nil, nil
	}

	if err := runHandler(ctx, handler, f.Values()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserHandler, err)
	}
	return nil, nil
}

// runHandler converts a panicking handler into an error so a broken embedder
// callback cannot take down the host.
func runHandler(ctx context.Context, handler SubmitHandler, values map[string]any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return handler(ctx, values)
}
