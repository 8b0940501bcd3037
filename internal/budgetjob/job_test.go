package budgetjob

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type refresherFunc func(ctx context.Context) (int, error)

func (f refresherFunc) RefreshAll(ctx context.Context) (int, error) {
	return f(ctx)
}

func TestNew(t *testing.T) {
	r := refresherFunc(func(ctx context.Context) (int, error) { return 0, nil })

	_, err := New("not a spec", r, zerolog.Nop())
	require.Error(t, err)

	j, err := New("", r, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, j.cron.Entries(), 1)

	j.Start()
	j.Stop()
}

func TestRun(t *testing.T) {
	var calls int

	j, err := New("*/5 * * * *", refresherFunc(func(ctx context.Context) (int, error) {
		calls++

		_, ok := ctx.Deadline()
		require.True(t, ok)

		if calls > 1 {
			return 0, errors.New("storage unavailable")
		}

		return 2, nil
	}), zerolog.Nop())
	require.NoError(t, err)

	j.Run()
	j.Run()
	require.Equal(t, 2, calls)
}
