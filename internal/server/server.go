package server

import (
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/bbsatvik01/manning-sheets-ikes/internal/config"
	"github.com/bbsatvik01/manning-sheets-ikes/internal/server/handlers"
	"github.com/bbsatvik01/manning-sheets-ikes/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Server is the local web UI around the chart generator.
type Server struct {
	router *gin.Engine
	store  *store.Store
	h      *handlers.Handlers
}

// NewServer wires the store, handlers, and routes.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Fatalf("Failed to prepare data directory: %v", err)
	}

	runStore, err := store.New(filepath.Join(dataDir, "manning.db"))
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	s := &Server{
		router: gin.Default(),
		store:  runStore,
		h:      handlers.New(cfg, dataDir, runStore),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	s.router.SetHTMLTemplate(tmpl)

	staticSub, _ := fs.Sub(staticFS, "static")
	s.router.StaticFS("/static", http.FS(staticSub))

	s.router.GET("/", s.h.Index)
	s.router.POST("/upload", s.h.Upload)
	s.router.GET("/download/:filename", s.h.Download)
	s.router.GET("/view/:filename", s.h.View)
	s.router.GET("/log", s.h.Log)

	api := s.router.Group("/api")
	{
		api.GET("/runs", s.h.APIRuns)
		api.GET("/report", s.h.APIReport)
	}
}

// Run starts the HTTP listener.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the history store.
func (s *Server) Close() error {
	return s.store.Close()
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
