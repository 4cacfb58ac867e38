package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/custodia-labs/staffscout/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// shutdownTimeout bounds how long in-flight HTTP requests may run after the
// context is cancelled. A discovery run can take minutes, so it is generous.
const shutdownTimeout = 30 * time.Second

// instructions is sent to clients during initialisation.
const instructions = `staffscout finds school leadership contacts.
Use standardise_title to check a job title against the title vocabulary
(also readable as the staffscout://titles resource).
Use discover_contacts to crawl a school directory; it can take several
minutes and is unavailable when the fetcher or LLM is not configured.`

// Server exposes title matching and contact discovery over MCP.
type Server struct {
	ports  *Ports
	log    logger.Logger
	server *mcp.Server
}

// NewServer creates a server for the given ports. A nil logger discards output.
func NewServer(ports *Ports, log logger.Logger) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}
	if log == nil {
		log = logger.NewNop()
	}

	impl := &mcp.Implementation{
		Name:    "staffscout",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		log:    log.With(zap.String("component", "mcp")),
		server: mcp.NewServer(impl, &mcp.ServerOptions{Instructions: instructions}),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// DiscoveryEnabled reports whether discover_contacts can run.
func (s *Server) DiscoveryEnabled() bool {
	return s.ports.Discovery != nil
}

// Run serves over stdio until the context is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("mcp server started", zap.String("transport", "stdio"),
		zap.Bool("discovery", s.DiscoveryEnabled()))
	err := s.server.Run(ctx, &mcp.StdioTransport{})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	s.log.Info("mcp server stopped")
	return nil
}

// RunHTTP serves the streamable HTTP transport on addr until the context is
// cancelled, then shuts down gracefully.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	s.log.Info("mcp server started", zap.String("transport", "http"), zap.String("addr", addr),
		zap.Bool("discovery", s.DiscoveryEnabled()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.log.Warn("mcp server shutdown incomplete", zap.Error(err))
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("mcp server stopped")
	return nil
}

// Handler returns the streamable HTTP handler for this server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
}
