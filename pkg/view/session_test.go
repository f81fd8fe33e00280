package view

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_DiscardsStaleGeneration(t *testing.T) {
	s := NewSession[string](HouseFailedMessage)

	ctxA, genA := s.Start(context.Background())
	ctxB, genB := s.Start(context.Background())

	assert.ErrorIs(t, ctxA.Err(), context.Canceled, "starting B cancels A")
	assert.NoError(t, ctxB.Err())

	assert.True(t, s.Resolve(genB, "house B", nil))
	assert.False(t, s.Resolve(genA, "house A", nil))

	state := s.State()
	assert.Equal(t, StatusReady, state.Status)
	assert.Equal(t, "house B", state.Data)
}

func TestSession_StaleResultWhileNewerLoading(t *testing.T) {
	s := NewSession[string](HouseFailedMessage)

	_, genA := s.Start(context.Background())
	_, genB := s.Start(context.Background())

	// A arrives first, while B is still loading.
	assert.False(t, s.Resolve(genA, "house A", nil))
	assert.True(t, s.State().IsLoading())

	assert.True(t, s.Resolve(genB, "", errors.New("timeout")))
	state := s.State()
	assert.Equal(t, StatusFailed, state.Status)
	assert.Equal(t, HouseFailedMessage, state.Message)
	assert.Empty(t, state.Data)
}

func TestSession_ResolveOnlyOnce(t *testing.T) {
	s := NewSession[int](HouseListFailedMessage)

	ctx, gen := s.Start(context.Background())
	assert.True(t, s.Resolve(gen, 1, nil))
	assert.False(t, s.Resolve(gen, 2, nil))
	assert.Equal(t, 1, s.State().Data)
	assert.ErrorIs(t, ctx.Err(), context.Canceled, "resolved generations release their context")
}

func TestSession_Retry(t *testing.T) {
	s := NewSession[int](CharacterFailedMessage)

	_, _, ok := s.Retry(context.Background())
	assert.False(t, ok, "retry is not available while loading")

	_, gen := s.Start(context.Background())
	s.Resolve(gen, 0, errors.New("boom"))
	require.True(t, s.State().CanRetry())

	_, retryGen, ok := s.Retry(context.Background())
	require.True(t, ok)
	assert.Greater(t, uint64(retryGen), uint64(gen))
	assert.True(t, s.State().IsLoading())

	s.Resolve(retryGen, 42, nil)
	_, _, ok = s.Retry(context.Background())
	assert.False(t, ok, "retry is not available when ready")
}

func TestSession_Load(t *testing.T) {
	s := NewSession[string](HouseFailedMessage)

	state := s.Load(context.Background(), func(ctx context.Context) (string, error) {
		assert.True(t, s.State().IsLoading())
		return "ok", nil
	})
	assert.True(t, state.IsReady())
	assert.Equal(t, "ok", state.Data)

	state = s.Load(context.Background(), func(ctx context.Context) (string, error) {
		return "", errors.New("no")
	})
	assert.True(t, state.CanRetry())
}

func TestSession_CloseDiscardsInFlight(t *testing.T) {
	s := NewSession[string](HouseFailedMessage)

	ctx, gen := s.Start(context.Background())
	s.Close()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.False(t, s.Current(gen))
	assert.False(t, s.Resolve(gen, "late", nil))
}

func TestStateJSON(t *testing.T) {
	b, err := json.Marshal(Failed[*string](HouseListFailedMessage, errors.New("secret cause")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","message":"Failed to load houses. Please try again later."}`, string(b))

	name := "Stark"
	b, err = json.Marshal(Ready(&name))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ready","data":"Stark"}`, string(b))

	assert.Equal(t, "loading", StatusLoading.String())
}
