package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	name     string
	calls    int
	failures int // fail this many times before succeeding
	reply    string
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Complete(ctx context.Context, history []Message) (string, error) {
	s.calls++
	if s.calls <= s.failures {
		return "", errors.New("boom")
	}
	return s.reply, nil
}

func instantChain(providers ...Provider) *Chain {
	c := NewChain(nil, providers...)
	c.sleep = func(ctx context.Context, d time.Duration) error { return nil }
	return c
}

func TestChainFirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "first", reply: "from first"}
	second := &stubProvider{name: "second", reply: "from second"}

	reply, err := instantChain(first, second).Complete(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, "from first", reply)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestChainRetriesThenSucceeds(t *testing.T) {
	flaky := &stubProvider{name: "flaky", failures: 2, reply: "eventually"}

	reply, err := instantChain(flaky).Complete(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, "eventually", reply)
	assert.Equal(t, 3, flaky.calls)
}

func TestChainExhaustedProviderTriesNext(t *testing.T) {
	dead := &stubProvider{name: "dead", failures: 99}
	backup := &stubProvider{name: "backup", reply: "from backup"}

	reply, err := instantChain(dead, backup).Complete(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, "from backup", reply)
	assert.Equal(t, 3, dead.calls, "each provider gets exactly three attempts")
}

func TestChainAllExhaustedReturnsFallback(t *testing.T) {
	dead1 := &stubProvider{name: "dead1", failures: 99}
	dead2 := &stubProvider{name: "dead2", failures: 99}

	reply, err := instantChain(dead1, dead2).Complete(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestChainEmptyReturnsFallback(t *testing.T) {
	reply, err := instantChain().Complete(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestChainHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dead := &stubProvider{name: "dead", failures: 99}
	c := NewChain(nil, dead)

	_, err := c.Complete(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
