package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bbsatvik01/manning-sheets-ikes/internal/config"
	"github.com/bbsatvik01/manning-sheets-ikes/internal/generator"
	"github.com/bbsatvik01/manning-sheets-ikes/internal/model"
	"github.com/bbsatvik01/manning-sheets-ikes/internal/store"
)

// Handlers serves the dashboard, upload processing, downloads, the
// workbook viewer, and the log page.
type Handlers struct {
	cfg     *config.AppConfig
	dataDir string
	store   *store.Store
	coord   *generator.Coordinator

	// Latest batch of generated chart filenames, overwritten wholesale
	// after each successful run. One worker, last writer wins.
	mu             sync.RWMutex
	currentOutputs []string
	lastReport     *generator.Report
}

// New creates the handler set.
func New(cfg *config.AppConfig, dataDir string, st *store.Store) *Handlers {
	return &Handlers{
		cfg:     cfg,
		dataDir: dataDir,
		store:   st,
		coord:   generator.NewCoordinator(st),
	}
}

func (h *Handlers) uploadsDir() string {
	return filepath.Join(h.dataDir, config.UploadsSubdir)
}

func (h *Handlers) outputDir() string {
	return filepath.Join(h.dataDir, config.OutputSubdir)
}

// LogPath is where the processing log lives; main points the log package
// at the same file.
func (h *Handlers) LogPath() string {
	return filepath.Join(h.dataDir, config.LogsSubdir, "manning_app.log")
}

// Response is the JSON API envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: data})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{Code: code, Message: message})
}

func redirectFlash(c *gin.Context, category, message string) {
	c.Redirect(http.StatusFound, "/?cat="+category+"&msg="+url.QueryEscape(message))
}

// ==================== Pages ====================

// Index renders the dashboard: upload form plus either the current
// session's charts or the full history from the store.
func (h *Handlers) Index(c *gin.Context) {
	showHistory := c.Query("view") == "history"

	h.mu.RLock()
	current := make([]string, len(h.currentOutputs))
	copy(current, h.currentOutputs)
	report := h.lastReport
	h.mu.RUnlock()

	files := current
	if showHistory {
		outputs, err := h.store.ListOutputs(200)
		if err != nil {
			log.Printf("WARNING: failed to list output history: %v", err)
		}
		files = make([]string, 0, len(outputs))
		for _, o := range outputs {
			files = append(files, o.Filename)
		}
	}

	latest := ""
	if len(current) > 0 {
		latest = current[len(current)-1]
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Files":           files,
		"TotalGenerated":  len(current),
		"LatestFile":      latest,
		"ShowHistory":     showHistory,
		"Locations":       model.ProfileNames(),
		"DefaultLocation": h.cfg.Schedule.Location,
		"Report":          report,
		"FlashCategory":   c.Query("cat"),
		"FlashMessage":    c.Query("msg"),
	})
}

// Upload stores the posted schedule, processes it synchronously, and
// redirects back to the dashboard with a flash message.
func (h *Handlers) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		redirectFlash(c, "error", "No file selected.")
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
		redirectFlash(c, "error", "Only .xlsx files are supported. Upload the MyStaff shift schedule exported in Task Wise view (.xlsx).")
		return
	}

	location := c.DefaultPostForm("location", h.cfg.Schedule.Location)
	if _, err := model.ProfileByName(location); err != nil {
		redirectFlash(c, "error", fmt.Sprintf("Unknown location %q.", location))
		return
	}

	// Timestamp prefix avoids collisions between repeated uploads.
	safeName := time.Now().Format("20060102_150405") + "_" + filepath.Base(fileHeader.Filename)
	inputPath := filepath.Join(h.uploadsDir(), safeName)
	if err := c.SaveUploadedFile(fileHeader, inputPath); err != nil {
		log.Printf("ERROR: failed to save upload: %v", err)
		redirectFlash(c, "error", "Failed to save the uploaded file.")
		return
	}
	log.Printf("Uploaded schedule saved to %q.", inputPath)

	report, err := h.coord.Generate(generator.Options{
		FilePath:  inputPath,
		Location:  location,
		OutputDir: h.outputDir(),
	})
	if err != nil {
		log.Printf("ERROR: failed to process %q: %v", safeName, err)
		redirectFlash(c, "error", "Could not read that file as an Excel schedule.")
		return
	}

	files := report.Filenames()
	if len(files) == 0 {
		log.Printf("WARNING: no output files generated from %q.", safeName)
		redirectFlash(c, "error", "Unable to process that file. Upload the MyStaff shift schedule exported in Task Wise view (.xlsx) and try again.")
		return
	}

	h.mu.Lock()
	h.currentOutputs = files
	h.lastReport = report
	h.mu.Unlock()

	log.Printf("Generated %d output file(s) from %q.", len(files), safeName)
	redirectFlash(c, "success", fmt.Sprintf("Successfully generated %d chart(s).", len(files)))
}

// Download serves a generated workbook as an attachment.
func (h *Handlers) Download(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	path := filepath.Join(h.outputDir(), filename)
	if _, err := os.Stat(path); err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}
	c.FileAttachment(path, filename)
}

// View renders an HTML representation of a generated workbook.
func (h *Handlers) View(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	if !strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		c.String(http.StatusNotFound, "not found")
		return
	}
	path := filepath.Join(h.outputDir(), filename)
	if _, err := os.Stat(path); err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}

	sheets, err := buildWorkbookView(path)
	if err != nil {
		log.Printf("ERROR: failed to read %q: %v", path, err)
		c.String(http.StatusInternalServerError, "Error reading workbook: %v", err)
		return
	}

	c.HTML(http.StatusOK, "view.html", gin.H{
		"Filename": filename,
		"Sheets":   sheets,
	})
}

// Log shows the processing log.
func (h *Handlers) Log(c *gin.Context) {
	content, err := os.ReadFile(h.LogPath())
	if err != nil && !os.IsNotExist(err) {
		c.String(http.StatusInternalServerError, "Error reading log file: %v", err)
		return
	}

	c.HTML(http.StatusOK, "log.html", gin.H{
		"Content": string(content),
		"LogName": filepath.Base(h.LogPath()),
	})
}

// ==================== JSON API ====================

// APIRuns returns recent processing runs.
func (h *Handlers) APIRuns(c *gin.Context) {
	runs, err := h.store.RecentRuns(50)
	if err != nil {
		errorResponse(c, 5001, err.Error())
		return
	}
	success(c, runs)
}

// APIReport returns the most recent run report.
func (h *Handlers) APIReport(c *gin.Context) {
	h.mu.RLock()
	report := h.lastReport
	h.mu.RUnlock()

	if report == nil {
		errorResponse(c, 4004, "no schedule processed yet")
		return
	}
	success(c, report)
}
