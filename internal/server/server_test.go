package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/bbsatvik01/manning-sheets-ikes/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Data.DataDir = t.TempDir()
	cfg.Server.DevMode = true

	srv := NewServer(cfg)
	t.Cleanup(func() { srv.Close() })
	return srv
}

// scheduleUpload builds a multipart body holding a small valid schedule.
func scheduleUpload(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	f.SetCellStr(sheet, "A1", "IKES Dining Schedule 2025")
	f.SetCellStr(sheet, "A2", "Role")
	f.SetCellStr(sheet, "B2", "Fri 07/04")
	f.SetCellStr(sheet, "A3", "Cashier")
	f.SetCellStr(sheet, "B3", "Jane Doe\n\n6:00 AM - 2:00 PM")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "schedule.xlsx")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if err := f.Write(part); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	mw.WriteField("location", "ikes")
	mw.Close()
	return &body, mw.FormDataContentType()
}

func flashOf(t *testing.T, location string) (category, message string) {
	t.Helper()
	u, err := url.Parse(location)
	if err != nil {
		t.Fatalf("parse redirect %q: %v", location, err)
	}
	return u.Query().Get("cat"), u.Query().Get("msg")
}

func TestIndexRenders(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET / = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Manning Chart") {
		t.Error("dashboard missing title")
	}
}

func TestUploadFlow(t *testing.T) {
	srv := newTestServer(t)

	body, contentType := scheduleUpload(t)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("POST /upload = %d, body: %s", w.Code, w.Body.String())
	}
	cat, msg := flashOf(t, w.Header().Get("Location"))
	if cat != "success" {
		t.Fatalf("flash = (%q, %q)", cat, msg)
	}

	// the report API now carries the run
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/report", nil))
	var resp struct {
		Code int `json:"code"`
		Data struct {
			ChartsWritten int `json:"chartsWritten"`
			Outputs       []struct {
				Filename string `json:"filename"`
				Total    int    `json:"total"`
			} `json:"outputs"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if resp.Code != 0 || resp.Data.ChartsWritten != 1 || len(resp.Data.Outputs) != 1 {
		t.Fatalf("report = %+v", resp)
	}
	filename := resp.Data.Outputs[0].Filename

	// generated workbook downloads
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/download/"+filename, nil))
	if w.Code != http.StatusOK {
		t.Errorf("GET /download/%s = %d", filename, w.Code)
	}

	// and renders in the viewer
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/view/"+filename, nil))
	if w.Code != http.StatusOK {
		t.Errorf("GET /view/%s = %d", filename, w.Code)
	}
	if !strings.Contains(w.Body.String(), "Jane Doe") {
		t.Error("viewer missing charted entry")
	}

	// the run landed in history
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/runs", nil))
	if !strings.Contains(w.Body.String(), `"success"`) {
		t.Errorf("GET /api/runs body: %s", w.Body.String())
	}
}

func TestUploadRejectsNonXLSX(t *testing.T) {
	srv := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("file", "schedule.csv")
	part.Write([]byte("not a workbook"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("POST /upload = %d", w.Code)
	}
	if cat, _ := flashOf(t, w.Header().Get("Location")); cat != "error" {
		t.Errorf("flash category = %q, want error", cat)
	}
}

func TestUploadMissingFile(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusFound {
		t.Fatalf("POST /upload = %d", w.Code)
	}
	if cat, _ := flashOf(t, w.Header().Get("Location")); cat != "error" {
		t.Errorf("flash category = %q, want error", cat)
	}
}

func TestDownloadUnknownFile(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/download/nope.xlsx", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("GET /download/nope.xlsx = %d", w.Code)
	}
}

func TestAPIReportBeforeAnyRun(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/report", nil))
	var resp struct {
		Code int `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != 4004 {
		t.Errorf("code = %d, want 4004", resp.Code)
	}
}
