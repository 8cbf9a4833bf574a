package auth

import (
	"context"
	"sync"
	"time"

	"github.com/dtroode/scheduleapp/internal/model"
)

type subscription struct {
	client *Client
	id     uint64
	once   sync.Once
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.client.removeHandler(s.id)
	})
}

// OnAuthStateChange registers handler for every future session change.
// Handlers run synchronously in registration order and must not call back
// into sign-in, sign-up or sign-out.
func (c *Client) OnAuthStateChange(handler model.AuthChangeHandler) model.Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	c.handlers[id] = handler
	c.order = append(c.order, id)

	return &subscription{client: c, id: id}
}

func (c *Client) removeHandler(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.handlers, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Client) snapshotHandlers() []model.AuthChangeHandler {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.AuthChangeHandler, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.handlers[id])
	}
	return out
}

func (c *Client) setSession(ctx context.Context, sess model.Session, event model.AuthEvent) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	stored := sess
	c.session = &stored
	c.loaded = true
	c.mu.Unlock()

	if err := c.storage.Save(ctx, sess); err != nil {
		c.logger.Error("Auth gateway: failed to persist session", "error", err.Error())
	}

	for _, h := range c.snapshotHandlers() {
		out := sess
		h(event, &out)
	}
}

func (c *Client) clearSession(ctx context.Context) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	c.session = nil
	c.loaded = true
	c.mu.Unlock()

	if err := c.storage.Clear(ctx); err != nil {
		c.logger.Error("Auth gateway: failed to clear persisted session", "error", err.Error())
	}

	for _, h := range c.snapshotHandlers() {
		h(model.AuthEventSignedOut, nil)
	}
}

// StartAutoRefresh refreshes the session in the background whenever it gets
// within the refresh margin of expiry. It stops on Close or when ctx is done.
func (c *Client) StartAutoRefresh(ctx context.Context, interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.logger.Debug("Auth gateway: auto refresh started", "interval", interval)

		for {
			select {
			case <-ctx.Done():
				return
			case <-c.stop:
				return
			case <-ticker.C:
				c.refreshIfNeeded(ctx)
			}
		}
	}()
}

func (c *Client) refreshIfNeeded(ctx context.Context) {
	c.mu.Lock()
	var sess *model.Session
	if c.session != nil {
		cp := *c.session
		sess = &cp
	}
	c.mu.Unlock()

	if sess == nil || !sess.ExpiresWithin(c.now(), c.margin) {
		return
	}

	if _, err := c.refresh(ctx, sess.RefreshToken); err != nil {
		c.logger.Warn("Auth gateway: background refresh failed", "error", err.Error())
	}
}

// Close stops background refresh.
func (c *Client) Close() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
	c.wg.Wait()
}
