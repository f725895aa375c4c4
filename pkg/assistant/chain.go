package assistant

import (
	"context"
	"time"
)

// FallbackReply is returned when every provider is exhausted or none is
// configured. The chat endpoint never surfaces a hard failure for missing
// AI capability.
const FallbackReply = "I'm currently offline, but here are some easy wins while I'm away: " +
	"take public transport or cycle instead of driving, switch to LED bulbs and unplug idle devices, " +
	"recycle plastic and paper, take shorter showers, and try a plant-based meal. " +
	"Every small action counts toward a greener planet!"

// retryDelays is the fixed backoff schedule per provider: attempt
// immediately, then after 1s, then after 3s.
var retryDelays = [...]time.Duration{0, 1 * time.Second, 3 * time.Second}

// Logger is the subset of the app logger the chain needs.
type Logger interface {
	Warn(module, message string, details map[string]interface{})
}

// Chain tries providers in priority order with a uniform retry policy and
// degrades to a canned reply instead of erroring.
type Chain struct {
	providers []Provider
	logger    Logger
	sleep     func(ctx context.Context, d time.Duration) error
}

func NewChain(logger Logger, providers ...Provider) *Chain {
	return &Chain{
		providers: providers,
		logger:    logger,
		sleep:     sleepCtx,
	}
}

// Complete returns the first successful provider reply, or FallbackReply
// once every provider is exhausted. The only returned error is context
// cancellation.
func (c *Chain) Complete(ctx context.Context, history []Message) (string, error) {
	for _, p := range c.providers {
		for attempt, delay := range retryDelays {
			if delay > 0 {
				if err := c.sleep(ctx, delay); err != nil {
					return "", err
				}
			}
			reply, err := p.Complete(ctx, history)
			if err == nil {
				return reply, nil
			}
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			if c.logger != nil {
				c.logger.Warn("assistant", "provider attempt failed", map[string]interface{}{
					"provider": p.Name(),
					"attempt":  attempt + 1,
					"error":    err.Error(),
				})
			}
		}
	}
	return FallbackReply, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
