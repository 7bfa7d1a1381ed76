package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeChecker struct {
	name string
	err  error
}

func (c fakeChecker) Name() string                    { return c.name }
func (c fakeChecker) Check(ctx context.Context) error { return c.err }

func TestReady_AllHealthy(t *testing.T) {
	t.Parallel()

	svc := NewService(fakeChecker{name: "a"}, fakeChecker{name: "b"})
	assert.NoError(t, svc.Ready(context.Background()))
}

func TestReady_FirstFailureWins(t *testing.T) {
	t.Parallel()

	errDown := errors.New("db down")
	svc := NewService(fakeChecker{name: "a", err: errDown}, fakeChecker{name: "b"})
	assert.ErrorIs(t, svc.Ready(context.Background()), errDown)
}

func TestReady_NoCheckers(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewService().Ready(context.Background()))
}
