// Package server exposes the diff engine and the color model as an HTTP JSON API.
package server

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/toolbench/toolbench/internal/config"
	"github.com/toolbench/toolbench/internal/diff"
)

//go:embed index.md
var indexMarkdown []byte

// Server is the HTTP API server.
type Server struct {
	echo        *echo.Echo
	cfg         config.Server
	version     string
	defaultMode diff.Mode
	index       []byte // rendered index page
}

// New creates a server for cfg. version is reported by /healthz.
func New(cfg config.Config, version string) (*Server, error) {
	mode, err := diff.ParseMode(cfg.Diff.Mode)
	if err != nil {
		return nil, err
	}
	index, err := renderIndex(version)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handleError

	s := &Server{
		echo:        e,
		cfg:         cfg.Server,
		version:     version,
		defaultMode: mode,
		index:       index,
	}
	s.middleware()
	s.routes()
	return s, nil
}

// Handler returns the http.Handler (useful for testing).
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) routes() {
	s.echo.GET("/", s.handleIndex)
	s.echo.GET("/healthz", s.handleHealth)

	v1 := s.echo.Group("/api/v1", s.rateLimit())
	v1.POST("/diff", s.handleDiff)
	v1.POST("/color/convert", s.handleColorConvert)
	v1.POST("/color/harmony", s.handleColorHarmony)
	v1.POST("/color/shades", s.handleColorShades)
	v1.POST("/color/contrast", s.handleColorContrast)
}

// Serve serves on ln until ctx is done, then shuts down gracefully, waiting at most the configured shutdown timeout for in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.echo.Listener = ln

	errc := make(chan error, 1)
	go func() {
		errc <- s.echo.Start("")
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe listens on the configured address and calls Serve. ready, if non-nil, is called with the bound address (relevant when port is 0).
func (s *Server) ListenAndServe(ctx context.Context, ready func(addr net.Addr)) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr(), err)
	}
	if ready != nil {
		ready(ln.Addr())
	}
	return s.Serve(ctx, ln)
}

func renderIndex(version string) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.New(goldmark.WithExtensions(extension.GFM)).Convert(indexMarkdown, &body); err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}
	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>toolbench</title></head><body>\n")
	page.Write(body.Bytes())
	fmt.Fprintf(&page, "<footer>toolbench %s</footer>\n</body></html>\n", version)
	return page.Bytes(), nil
}
