package relay

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrBackpressure is returned when a connection's write queue is full
var ErrBackpressure = errors.New("write queue is full")

const (
	defaultWriteTimeout = 5 * time.Second
	sendQueueSize       = 16
)

type peer struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// trySend queues msg without blocking
func (p *peer) trySend(msg []byte) error {
	select {
	case p.send <- msg:
		return nil
	default:
		return ErrBackpressure
	}
}

// HubOption configures a Hub
type HubOption func(*Hub)

// WithWriteTimeout bounds every websocket write
func WithWriteTimeout(d time.Duration) HubOption {
	return func(h *Hub) {
		h.writeTimeout = d
	}
}

// WithOriginPatterns allows cross-origin browsers matching the patterns
func WithOriginPatterns(patterns ...string) HubOption {
	return func(h *Hub) {
		h.originPatterns = patterns
	}
}

// Hub accepts websocket connections and rebroadcasts blobs (implements http.Handler)
type Hub struct {
	mu    sync.Mutex
	peers map[string]*peer
	blobs Peers

	logger         *slog.Logger
	writeTimeout   time.Duration
	originPatterns []string
}

// NewHub creates an empty hub
func NewHub(logger *slog.Logger, opts ...HubOption) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Hub{
		peers:        make(map[string]*peer),
		blobs:        make(Peers),
		logger:       logger,
		writeTimeout: defaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Count returns the number of connected peers
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.peers)
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to accept", "err", err)
		return
	}
	defer conn.CloseNow()

	p := &peer{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendQueueSize),
	}
	h.join(p)
	defer h.leave(p)

	logger := h.logger.With("peer", p.id)
	logger.DebugContext(r.Context(), "peer connected")

	eg, ctx := errgroup.WithContext(r.Context())
	eg.Go(func() error {
		return h.readLoop(ctx, p, logger)
	})
	eg.Go(func() error {
		return h.writeLoop(ctx, p)
	})

	err = eg.Wait()
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		logger.DebugContext(r.Context(), "peer disconnected")
	default:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.WarnContext(r.Context(), "peer dropped", "err", err)
		}
	}
}

func (h *Hub) readLoop(ctx context.Context, p *peer, logger *slog.Logger) error {
	for {
		typ, data, err := p.conn.Read(ctx)
		if err != nil {
			return err
		}
		if typ != websocket.MessageText || !isObject(data) {
			logger.DebugContext(ctx, "dropped non-object frame", "bytes", len(data))
			continue
		}
		h.update(p.id, data)
	}
}

func (h *Hub) writeLoop(ctx context.Context, p *peer) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-p.send:
			wctx, cancel := context.WithTimeout(ctx, h.writeTimeout)
			err := p.conn.Write(wctx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				return err
			}
		}
	}
}

func (h *Hub) join(p *peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.peers[p.id] = p
	h.blobs[p.id] = emptyBlob
}

func (h *Hub) leave(p *peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.peers, p.id)
	delete(h.blobs, p.id)
}

// update stores the sender's blob and queues the full map to every peer.
// A peer with a full queue misses this broadcast.
func (h *Hub) update(id string, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.blobs[id] = json.RawMessage(append([]byte(nil), data...))
	msg, err := json.Marshal(h.blobs)
	if err != nil {
		h.logger.Error("failed to encode peers", "err", err)
		return
	}

	for _, p := range h.peers {
		if err := p.trySend(msg); err != nil {
			h.logger.Debug("broadcast dropped", "peer", p.id, "err", err)
		}
	}
}
