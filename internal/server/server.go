// Package server exposes the aggregated feed over HTTP: a rendered
// page at / and JSON at /api/posts.
package server

import (
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// Server wires the cached aggregation into gin handlers.
type Server struct {
	cache  *Cache
	logger *log.Logger
}

// New creates a Server. A nil logger discards.
func New(cache *Cache, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{cache: cache, logger: logger}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(template.Must(template.New("index").Parse(indexTemplate)))

	r.GET("/", s.home)
	r.GET("/api/posts", s.posts)
	r.GET("/healthz", s.healthz)
	return r
}

func (s *Server) home(c *gin.Context) {
	res, fetchedAt := s.cache.Get(c.Request.Context(), c.Query("refresh") == "1")
	c.HTML(http.StatusOK, "index", gin.H{
		"Posts":     res.Posts,
		"Companies": res.Companies,
		"Errors":    res.Errors,
		"FetchedAt": fetchedAt.Format("2006-01-02 15:04 UTC"),
	})
}

func (s *Server) posts(c *gin.Context) {
	res, fetchedAt := s.cache.Get(c.Request.Context(), c.Query("refresh") == "1")
	c.JSON(http.StatusOK, gin.H{
		"fetched_at": fetchedAt.Format(time.RFC3339),
		"count":      len(res.Posts),
		"companies":  res.Companies,
		"errors":     res.Errors,
		"posts":      res.Posts,
	})
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
