// Package http exposes the service's HTTP surface: the WebSocket feed,
// the health snapshot, and Prometheus metrics.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/planetmode/worldstate/internal/adapter/openmeteo"
	"github.com/planetmode/worldstate/internal/adapter/usgs"
	"github.com/planetmode/worldstate/internal/broadcast"
	"github.com/planetmode/worldstate/internal/domain"
)

// Broadcaster is the hub surface the server needs.
type Broadcaster interface {
	Register(ctx context.Context, s broadcast.Session) error
	Unregister(s broadcast.Session)
	Stats() broadcast.Stats
}

// QuakeStatus reports USGS adapter activity for the health snapshot.
type QuakeStatus interface {
	Stats() usgs.Stats
	CacheSize() int
}

// WeatherStatus reports Open-Meteo adapter activity for the health snapshot.
type WeatherStatus interface {
	Stats() openmeteo.Stats
	CacheSize() int
}

// Server exposes /ws, /health, and /metrics.
type Server struct {
	httpServer *http.Server
	hub        Broadcaster
	quakes     QuakeStatus
	weather    WeatherStatus
	logger     *slog.Logger
	upgrader   websocket.Upgrader
	startedAt  time.Time
}

// NewServer creates the HTTP server and wires its routes.
func NewServer(addr string, hub Broadcaster, quakes QuakeStatus, weather WeatherStatus, logger *slog.Logger) *Server {
	s := &Server{
		hub:     hub,
		quakes:  quakes,
		weather: weather,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Public demo feed, any origin may subscribe.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		startedAt: domain.Now(),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors)
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/ws", s.handleWS)

	s.httpServer = &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// cors answers preflight requests and marks every response as
// cross-origin readable. The feed carries no credentials.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type apiStatus struct {
	Fetches   int64  `json:"fetches"`
	LastFetch string `json:"lastFetch,omitempty"`
}

type healthResponse struct {
	Status            string `json:"status"`
	Uptime            int64  `json:"uptime"`
	Clients           int    `json:"clients"`
	EventsEmitted     int64  `json:"eventsEmitted"`
	RealEventsEmitted int64  `json:"realEventsEmitted"`
	APIs              struct {
		USGS      apiStatus `json:"usgs"`
		OpenMeteo apiStatus `json:"openMeteo"`
	} `json:"apis"`
	Errors    int64 `json:"errors"`
	CacheSize int   `json:"cacheSize"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	hubStats := s.hub.Stats()
	quakeStats := s.quakes.Stats()
	weatherStats := s.weather.Stats()

	resp := healthResponse{
		Status:            "ok",
		Uptime:            int64(domain.Now().Sub(s.startedAt).Seconds()),
		Clients:           hubStats.Clients,
		EventsEmitted:     hubStats.EventsEmitted,
		RealEventsEmitted: hubStats.RealEventsEmitted,
		Errors:            quakeStats.Errors + weatherStats.Errors,
		CacheSize:         s.quakes.CacheSize() + s.weather.CacheSize(),
	}
	resp.APIs.USGS = apiStatus{Fetches: quakeStats.Fetches, LastFetch: formatFetchTime(quakeStats.LastFetch)}
	resp.APIs.OpenMeteo = apiStatus{Fetches: weatherStats.Fetches, LastFetch: formatFetchTime(weatherStats.LastFetch)}

	// Health is a live snapshot, intermediaries must not cache it.
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, resp)
}

func formatFetchTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}

	sess := &wsSession{conn: conn}
	if err := s.hub.Register(r.Context(), sess); err != nil {
		s.logger.Warn("session init failed", "error", err, "remote", r.RemoteAddr)
		_ = conn.Close()
		return
	}

	// The feed is push-only; the read loop exists to observe disconnects.
	// Inbound payloads are discarded.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			s.hub.Unregister(sess)
			return
		}
	}
}

// wsSession adapts a websocket connection to the hub's session interface,
// serializing writes.
type wsSession struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *wsSession) WriteMessage(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

func (s *wsSession) Close() error {
	return s.conn.Close()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort health response
}
