package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/poopdl/poopdl/internal/models"
)

type stubFileResolver struct {
	files []models.FileItem
}

func (s stubFileResolver) GetAllFiles(ctx context.Context, url string) []models.FileItem {
	return s.files
}

type stubLinkResolver struct {
	link string
}

func (s stubLinkResolver) GetLink(ctx context.Context, domain, id string) string {
	return s.link
}

func performRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return body
}

func TestGenerateFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name            string
		body            string
		files           []models.FileItem
		expectedStatus  string
		expectedMessage string
		expectedCount   int
	}{
		{
			name:            "Invalid JSON body",
			body:            "{not json",
			expectedStatus:  "failed",
			expectedMessage: "Request must be valid JSON",
		},
		{
			name:            "Missing url parameter",
			body:            `{"other":"x"}`,
			expectedStatus:  "failed",
			expectedMessage: "invalid params",
		},
		{
			name:            "No files found",
			body:            `{"url":"https://poop.run/d/abc"}`,
			expectedStatus:  "failed",
			expectedMessage: "file not found",
		},
		{
			name: "Files found",
			body: `{"url":"https://poop.run/f/abc"}`,
			files: []models.FileItem{
				{Domain: "poop.run", ID: "id1", Name: "Video One", Image: "/t1.jpg"},
				{Domain: "poop.run", ID: "id2", Name: "Video Two", Image: "/t2.jpg"},
			},
			expectedStatus:  "success",
			expectedMessage: "",
			expectedCount:   2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine := gin.New()
			handler := NewFileHandler(stubFileResolver{files: tc.files})
			engine.POST("/generate_file", handler.GenerateFile)

			recorder := performRequest(engine, http.MethodPost, "/generate_file", tc.body)
			if recorder.Code != http.StatusOK {
				t.Fatalf("status code = %d, want 200", recorder.Code)
			}

			body := decodeBody(t, recorder)
			if body["status"] != tc.expectedStatus {
				t.Errorf("status = %v, want %q", body["status"], tc.expectedStatus)
			}
			if body["message"] != tc.expectedMessage {
				t.Errorf("message = %v, want %q", body["message"], tc.expectedMessage)
			}

			files, ok := body["file"].([]interface{})
			if !ok {
				t.Fatalf("file field should always be a list, got %T", body["file"])
			}
			if len(files) != tc.expectedCount {
				t.Errorf("file count = %d, want %d", len(files), tc.expectedCount)
			}
		})
	}
}

func TestGenerateLink(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name            string
		body            string
		link            string
		expectedStatus  string
		expectedMessage string
		expectedLink    string
	}{
		{
			name:            "Invalid JSON body",
			body:            "not json at all",
			expectedStatus:  "failed",
			expectedMessage: "Request must be valid JSON",
		},
		{
			name:            "Missing id parameter",
			body:            `{"domain":"poop.run"}`,
			expectedStatus:  "failed",
			expectedMessage: "invalid params",
		},
		{
			name:            "Missing domain parameter",
			body:            `{"id":"abc"}`,
			expectedStatus:  "failed",
			expectedMessage: "invalid params",
		},
		{
			name:            "Link not found",
			body:            `{"domain":"poop.run","id":"abc"}`,
			expectedStatus:  "failed",
			expectedMessage: "link not found",
		},
		{
			name:            "Link found",
			body:            `{"domain":"poop.run","id":"abc"}`,
			link:            "http://cdn.example/file.mp4",
			expectedStatus:  "success",
			expectedMessage: "",
			expectedLink:    "http://cdn.example/file.mp4",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine := gin.New()
			handler := NewLinkHandler(stubLinkResolver{link: tc.link})
			engine.POST("/generate_link", handler.GenerateLink)

			recorder := performRequest(engine, http.MethodPost, "/generate_link", tc.body)
			if recorder.Code != http.StatusOK {
				t.Fatalf("status code = %d, want 200", recorder.Code)
			}

			body := decodeBody(t, recorder)
			if body["status"] != tc.expectedStatus {
				t.Errorf("status = %v, want %q", body["status"], tc.expectedStatus)
			}
			if body["message"] != tc.expectedMessage {
				t.Errorf("message = %v, want %q", body["message"], tc.expectedMessage)
			}
			if body["link"] != tc.expectedLink {
				t.Errorf("link = %v, want %q", body["link"], tc.expectedLink)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	handler := NewIndexHandler()
	engine.GET("/", handler.Index)

	recorder := performRequest(engine, http.MethodGet, "/", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("status code = %d, want 200", recorder.Code)
	}

	body := decodeBody(t, recorder)
	if body["status"] != "success" {
		t.Errorf("status = %v, want success", body["status"])
	}
	if body["version"] != APIVersion {
		t.Errorf("version = %v, want %q", body["version"], APIVersion)
	}

	services, ok := body["service"].([]interface{})
	if !ok || len(services) != 2 {
		t.Fatalf("expected 2 service entries, got %v", body["service"])
	}
}
