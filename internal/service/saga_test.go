package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaga_Abort_RunsInReverse(t *testing.T) {
	s := newSaga("test", "e1", newTestLogger(t))

	var order []string
	s.onFailure("first", func(context.Context) error { order = append(order, "first"); return nil })
	s.onFailure("second", func(context.Context) error { order = append(order, "second"); return nil })

	cause := errors.New("boom")
	err := s.abort(context.Background(), cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestSaga_Abort_JoinsCompensationErrors(t *testing.T) {
	s := newSaga("test", "e1", newTestLogger(t))

	undoErr := errors.New("undo failed")
	ran := false
	s.onFailure("first", func(context.Context) error { ran = true; return nil })
	s.onFailure("second", func(context.Context) error { return undoErr })

	cause := errors.New("boom")
	err := s.abort(context.Background(), cause)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, undoErr)
	assert.True(t, ran)
	assert.Contains(t, err.Error(), "rollback second")
}

func TestSaga_Abort_IgnoresCancelledContext(t *testing.T) {
	s := newSaga("test", "e1", newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ctxErr error
	s.onFailure("undo", func(ctx context.Context) error { ctxErr = ctx.Err(); return nil })

	_ = s.abort(ctx, errors.New("boom"))

	assert.NoError(t, ctxErr)
}
