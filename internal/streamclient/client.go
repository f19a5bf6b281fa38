// Package streamclient is a reconnecting consumer of the event feed. It
// dials the WebSocket endpoint, decodes frames into typed callbacks, and
// retries with growing backoff until a retry budget is exhausted.
package streamclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"

	"github.com/planetmode/worldstate/internal/domain"
	"github.com/planetmode/worldstate/internal/refdata"
)

// State is the connection lifecycle phase.
type State string

const (
	StateIdle         State = "idle"
	StateConnecting   State = "connecting"
	StateOpen         State = "open"
	StateDisconnected State = "disconnected"
	// StateFailed is terminal: the retry budget is spent and the client
	// will not dial again.
	StateFailed State = "failed"
)

// InitData is the snapshot the server pushes on connect.
type InitData struct {
	Regions           []refdata.Region `json:"regions"`
	ServerTime        time.Time        `json:"serverTime"`
	RecentEarthquakes []domain.Event   `json:"recentEarthquakes"`
}

// Handlers receives decoded frames and state transitions. Nil handlers are
// skipped. Callbacks run on the client's read goroutine.
type Handlers struct {
	OnInit  func(InitData)
	OnEvent func(domain.Event)
	OnState func(state State, attempt int)
}

// Options tunes reconnect behavior. Zero values take the defaults.
type Options struct {
	BackoffBase time.Duration // default 1s
	BackoffMax  time.Duration // default 15s
	MaxAttempts int           // default 20

	Clock  clockwork.Clock
	Dialer *websocket.Dialer
}

// Client consumes the event feed from one endpoint.
type Client struct {
	url      string
	handlers Handlers
	opts     Options
	logger   *slog.Logger

	mu     sync.Mutex
	state  State
	conn   *websocket.Conn
	closed bool
}

// New creates a client for the given ws:// or wss:// endpoint.
func New(url string, handlers Handlers, opts Options, logger *slog.Logger) *Client {
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = time.Second
	}
	if opts.BackoffMax <= 0 {
		opts.BackoffMax = 15 * time.Second
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 20
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Dialer == nil {
		opts.Dialer = websocket.DefaultDialer
	}
	return &Client{url: url, handlers: handlers, opts: opts, logger: logger, state: StateIdle}
}

// State returns the current lifecycle phase.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Run dials and consumes the feed until ctx is cancelled, Disconnect is
// called, or the retry budget is exhausted. A successful connection resets
// the budget.
func (c *Client) Run(ctx context.Context) {
	attempt := 0
	for {
		if c.isClosed() {
			return
		}
		c.setState(StateConnecting, attempt)

		conn, resp, err := c.opts.Dialer.DialContext(ctx, c.url, nil)
		if resp != nil {
			resp.Body.Close()
		}
		if err != nil {
			attempt++
			if attempt >= c.opts.MaxAttempts {
				c.logger.Error("retry budget exhausted", "url", c.url, "attempts", attempt)
				c.setState(StateFailed, attempt)
				return
			}
			wait := c.backoff(attempt)
			c.logger.Warn("dial failed", "url", c.url, "attempt", attempt, "retry_in", wait, "error", err)
			c.setState(StateDisconnected, attempt)
			select {
			case <-ctx.Done():
				return
			case <-c.opts.Clock.After(wait):
			}
			continue
		}

		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			_ = conn.Close()
			return
		}
		c.conn = conn
		c.mu.Unlock()

		attempt = 0
		c.setState(StateOpen, 0)
		c.logger.Info("connected", "url", c.url)

		// Close the connection when ctx ends so the read loop unblocks.
		readCtx, cancelRead := context.WithCancel(ctx)
		go func() {
			<-readCtx.Done()
			_ = conn.Close()
		}()

		c.readLoop(conn)
		cancelRead()

		if c.isClosed() || ctx.Err() != nil {
			return
		}
		attempt++
		wait := c.backoff(attempt)
		c.logger.Warn("connection dropped", "url", c.url, "attempt", attempt, "retry_in", wait)
		c.setState(StateDisconnected, attempt)
		select {
		case <-ctx.Done():
			return
		case <-c.opts.Clock.After(wait):
		}
	}
}

// Disconnect stops the client and suppresses further callbacks. Safe to call
// more than once.
func (c *Client) Disconnect() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	conn := c.conn
	c.state = StateIdle
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
}

func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !c.isClosed() {
				c.logger.Warn("read failed", "error", err)
			}
			return
		}
		c.dispatch(data)
	}
}

func (c *Client) dispatch(data []byte) {
	var f struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &f); err != nil {
		c.logger.Warn("malformed frame dropped", "error", err)
		return
	}

	switch f.Type {
	case "init":
		var init InitData
		if err := json.Unmarshal(f.Payload, &init); err != nil {
			c.logger.Warn("malformed init payload dropped", "error", err)
			return
		}
		c.callInit(init)
	case "event":
		ev, err := domain.DecodeEvent(f.Payload)
		if err != nil {
			c.logger.Warn("malformed event payload dropped", "error", err)
			return
		}
		c.callEvent(ev)
	default:
		c.logger.Debug("unknown frame type ignored", "type", f.Type)
	}
}

func (c *Client) callInit(init InitData) {
	if c.isClosed() || c.handlers.OnInit == nil {
		return
	}
	c.handlers.OnInit(init)
}

func (c *Client) callEvent(ev domain.Event) {
	if c.isClosed() || c.handlers.OnEvent == nil {
		return
	}
	c.handlers.OnEvent(ev)
}

func (c *Client) setState(s State, attempt int) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.state = s
	c.mu.Unlock()

	if c.handlers.OnState != nil {
		c.handlers.OnState(s, attempt)
	}
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// backoff grows by half per attempt, capped at BackoffMax.
func (c *Client) backoff(attempt int) time.Duration {
	d := time.Duration(float64(c.opts.BackoffBase) * math.Pow(1.5, float64(attempt-1)))
	if d > c.opts.BackoffMax {
		return c.opts.BackoffMax
	}
	return d
}
