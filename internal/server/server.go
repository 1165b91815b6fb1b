// Package server serves the status page and its websocket endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"

	"github.com/lxzan/gws"
	"github.com/rs/zerolog"

	"github.com/soar/padmapper/internal/hub"
)

type Server struct {
	hub        *hub.Hub
	upgrader   *gws.Upgrader
	assets     map[string]asset
	addr       string
	log        zerolog.Logger
	httpServer *http.Server
}

// New prepares a server for addr. Static files come from assets and are
// minified once here.
func New(h *hub.Hub, assets fs.FS, addr string, log zerolog.Logger) (*Server, error) {
	files, err := loadAssets(assets)
	if err != nil {
		return nil, err
	}
	return &Server{
		hub: h,
		upgrader: gws.NewUpgrader(h, &gws.ServerOption{
			ParallelEnabled:   false,
			Recovery:          gws.Recovery,
			PermessageDeflate: gws.PermessageDeflate{Enabled: true},
		}),
		assets: files,
		addr:   addr,
		log:    log,
	}, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/", s.handleAsset)
	return mux
}

// Start listens on the configured address and serves in the background.
// Listen errors are returned; later serve errors go to errCh.
func (s *Server) Start(errCh chan<- error) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	s.httpServer = &http.Server{Handler: s.Handler()}
	s.log.Info().Str("url", "http://"+ln.Addr().String()).Msg("status page listening")

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.log.Info().Msg("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	go conn.ReadLoop()
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	a, ok := s.assets[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", a.contentType)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(a.body)
}
