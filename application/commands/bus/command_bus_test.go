package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testCommand struct {
	invalid bool
}

func (c testCommand) Validate() error {
	if c.invalid {
		return errors.New("invalid command")
	}
	return nil
}

func TestCommandBus_Dispatch(t *testing.T) {
	b := NewCommandBus()

	var handled bool
	err := b.Register(testCommand{}, CommandHandlerFunc(func(_ context.Context, _ Command) error {
		handled = true
		return nil
	}))
	require.NoError(t, err)

	require.NoError(t, b.Send(context.Background(), testCommand{}))
	assert.True(t, handled)
}

func TestCommandBus_ValidatesBeforeDispatch(t *testing.T) {
	b := NewCommandBus()

	var handled bool
	require.NoError(t, b.Register(testCommand{}, CommandHandlerFunc(func(_ context.Context, _ Command) error {
		handled = true
		return nil
	})))

	err := b.Send(context.Background(), testCommand{invalid: true})
	require.Error(t, err)
	assert.False(t, handled)
}

func TestCommandBus_UnregisteredCommand(t *testing.T) {
	b := NewCommandBus()
	assert.Error(t, b.Send(context.Background(), testCommand{}))
}

func TestCommandBus_DuplicateRegistration(t *testing.T) {
	b := NewCommandBus()
	noop := CommandHandlerFunc(func(_ context.Context, _ Command) error { return nil })

	require.NoError(t, b.Register(testCommand{}, noop))
	assert.Error(t, b.Register(testCommand{}, noop))
}

func TestChain_Order(t *testing.T) {
	var calls []string

	record := func(name string) Middleware {
		return func(next CommandHandler) CommandHandler {
			return CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
				calls = append(calls, name)
				return next.Handle(ctx, cmd)
			})
		}
	}

	handler := Chain(CommandHandlerFunc(func(_ context.Context, _ Command) error {
		calls = append(calls, "handler")
		return nil
	}), record("outer"), record("inner"))

	require.NoError(t, handler.Handle(context.Background(), testCommand{}))
	assert.Equal(t, []string{"outer", "inner", "handler"}, calls)
}

func TestLoggingMiddleware_PassesErrorThrough(t *testing.T) {
	boom := errors.New("boom")
	handler := Chain(CommandHandlerFunc(func(_ context.Context, _ Command) error {
		return boom
	}), LoggingMiddleware(zap.NewNop()))

	assert.ErrorIs(t, handler.Handle(context.Background(), testCommand{}), boom)
}
