// Copyright 2026 The Transiteer Contributors
// All rights reserved.

// Package server exposes map rendering over HTTP.
package server

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/talwat/transiteer"
	"github.com/talwat/transiteer/internal/config"
	"github.com/talwat/transiteer/internal/mapfile"
)

const svgContentType = "image/svg+xml; charset=utf-8"

// Handler serves the render endpoints.
type Handler struct {
	maxBody int64
	log     *logrus.Logger
}

// New returns a gin engine with all routes registered.
func New(cfg *config.Config, log *logrus.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	h := &Handler{maxBody: cfg.MaxBody, log: log}

	r := gin.New()
	r.Use(gin.Recovery(), h.logRequests)
	r.GET("/healthz", h.Health)
	r.GET("/demo", h.Demo)
	r.POST("/render", h.Render)
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           New(cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr).Info("Server: listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info("Server: shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Demo returns the fixed demo fragment, or the full document with ?document=true.
func (h *Handler) Demo(c *gin.Context) {
	if wantDocument(c) {
		c.Data(http.StatusOK, svgContentType, []byte(transiteer.DemoDocument()))
		return
	}
	c.Data(http.StatusOK, svgContentType, []byte(transiteer.DemoFragment()))
}

// Render decodes a map definition from the request body and returns its fragment, or the full
// document with ?document=true. YAML bodies are recognized by content type; anything else is read
// as JSON.
func (h *Handler) Render(c *gin.Context) {
	logCtx := h.log.WithField("path", c.FullPath())

	data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		logCtx.WithError(err).Error("Handler.Render: failed to read body")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
		return
	}

	m, err := mapfile.Decode(data, requestFormat(c))
	if err != nil {
		logCtx.WithError(err).Warn("Handler.Render: invalid map definition")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out := transiteer.RenderFragment(m)
	if wantDocument(c) {
		out = transiteer.Serialize(m)
	}
	logCtx.WithField("lines", m.Len()).Debug("Handler.Render: rendered map")
	c.Data(http.StatusOK, svgContentType, []byte(out))
}

func (h *Handler) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()
	h.log.WithFields(logrus.Fields{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start),
	}).Info("request")
}

func wantDocument(c *gin.Context) bool {
	ok, _ := strconv.ParseBool(c.Query("document"))
	return ok
}

func requestFormat(c *gin.Context) mapfile.Format {
	mt, _, err := mime.ParseMediaType(c.GetHeader("Content-Type"))
	if err != nil {
		return mapfile.FormatJSON
	}
	switch mt {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return mapfile.FormatYAML
	}
	return mapfile.FormatJSON
}
