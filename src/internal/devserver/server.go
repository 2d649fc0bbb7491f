package devserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/maksimkurb/phonebook/src/internal/log"
)

// Server is the dev contacts service.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
}

// NewServer creates a server for store on bindAddr. Nothing listens until
// Listen or Start is called.
func NewServer(bindAddr string, store *Store) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         bindAddr,
			Handler:      NewRouter(store),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Listen binds the listening socket.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpServer.Addr
}

// Start serves requests until Stop is called.
func (s *Server) Start() error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	log.Infof("[DEV] Serving contacts on http://%s/persons/", s.Addr())

	if err := s.httpServer.Serve(s.listener); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Stop gracefully stops the server.
func (s *Server) Stop(ctx context.Context) error {
	log.Infof("[DEV] Shutting down server...")
	return s.httpServer.Shutdown(ctx)
}
