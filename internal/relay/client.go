package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/coder/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/splitshot/internal/domain/entity"
)

// Client publishes the local body state and keeps the latest peer map
type Client struct {
	conn   *websocket.Conn
	out    chan []byte
	latest chan map[string]entity.BodyState
	logger *slog.Logger
}

// Dial connects to a relay hub at url (ws:// or wss://)
func Dial(ctx context.Context, url string, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial relay: %w", err)
	}
	return &Client{
		conn:   conn,
		out:    make(chan []byte, sendQueueSize),
		latest: make(chan map[string]entity.BodyState, 1),
		logger: logger,
	}, nil
}

// Publish queues the body state; it never blocks the caller
func (c *Client) Publish(state entity.BodyState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode body state: %w", err)
	}
	select {
	case c.out <- data:
		return nil
	default:
		return ErrBackpressure
	}
}

// Latest returns the most recent peer map received since the last call
func (c *Client) Latest() (map[string]entity.BodyState, bool) {
	select {
	case peers := <-c.latest:
		return peers, true
	default:
		return nil, false
	}
}

// Run pumps frames until ctx is done or the connection fails
func (c *Client) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return c.readPump(ctx)
	})
	eg.Go(func() error {
		return c.writePump(ctx)
	})
	return eg.Wait()
}

// Close closes the connection
func (c *Client) Close() error {
	return c.conn.Close(websocket.StatusNormalClosure, "")
}

func (c *Client) readPump(ctx context.Context) error {
	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			return err
		}

		var peers map[string]entity.BodyState
		if err := json.Unmarshal(data, &peers); err != nil {
			c.logger.DebugContext(ctx, "ignored relay frame", "err", err)
			continue
		}
		c.offer(peers)
	}
}

// offer replaces any unread peer map with peers
func (c *Client) offer(peers map[string]entity.BodyState) {
	for {
		select {
		case c.latest <- peers:
			return
		default:
		}
		select {
		case <-c.latest:
		default:
		}
	}
}

func (c *Client) writePump(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case data := <-c.out:
			wctx, cancel := context.WithTimeout(ctx, defaultWriteTimeout)
			err := c.conn.Write(wctx, websocket.MessageText, data)
			cancel()
			if err != nil {
				return err
			}
		}
	}
}
