package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamecatalog/backend/internal/auth"
	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/testutil"
	"gamecatalog/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type genreBody struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type gameBody struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Genres      []genreBody `json:"genres"`
}

func setupTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if cfg == nil {
		cfg = &config.Config{}
	}
	return NewRouter(cfg, testutil.NewTestDB(t), hub.NewHub())
}

func send(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestGameLifecycle(t *testing.T) {
	router := setupTestRouter(t, nil)

	resp := send(router, "POST", "/game", `{"name":"Test Game","description":"Test Game Description","image":"image.jpg","genres":["Action"]}`, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created gameBody
	json.Unmarshal(resp.Body.Bytes(), &created)
	if created.ID != 1 || len(created.Genres) != 1 || created.Genres[0] != (genreBody{ID: 1, Name: "Action"}) {
		t.Fatalf("Unexpected created game %+v", created)
	}

	resp = send(router, "GET", "/game/1", "", nil)
	var fetched gameBody
	json.Unmarshal(resp.Body.Bytes(), &fetched)
	if resp.Code != http.StatusOK || fetched.Name != "Test Game" || fetched.Description != "Test Game Description" || len(fetched.Genres) != 1 {
		t.Fatalf("Unexpected fetched game %d %+v", resp.Code, fetched)
	}

	resp = send(router, "PATCH", "/game/1", `{"genres":["Adventure"]}`, nil)
	var updated gameBody
	json.Unmarshal(resp.Body.Bytes(), &updated)
	if resp.Code != http.StatusOK || len(updated.Genres) != 1 || updated.Genres[0] != (genreBody{ID: 2, Name: "Adventure"}) {
		t.Fatalf("Unexpected updated game %d %+v", resp.Code, updated)
	}
	if updated.Name != "Test Game" {
		t.Errorf("Expected name to be kept, got %q", updated.Name)
	}

	resp = send(router, "DELETE", "/game/1", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}
	resp = send(router, "GET", "/game/1", "", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", resp.Code)
	}

	resp = send(router, "GET", "/genre", "", nil)
	var genres []genreBody
	json.Unmarshal(resp.Body.Bytes(), &genres)
	if len(genres) != 2 {
		t.Errorf("Expected both genres to remain, got %+v", genres)
	}
}

func TestUnknownRoute(t *testing.T) {
	router := setupTestRouter(t, nil)

	resp := send(router, "GET", "/games", "", nil)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", resp.Code)
	}
	var body map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &body)
	if body["message"] != "Cannot GET /games" || body["error"] != "Not Found" {
		t.Errorf("Unexpected body %v", body)
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := setupTestRouter(t, nil)

	resp := send(router, "GET", "/genre", "", map[string]string{"X-Request-ID": "abc-123"})

	if got := resp.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("Expected request id to be echoed, got %q", got)
	}
}

func TestHealthAndSwagger(t *testing.T) {
	router := setupTestRouter(t, nil)

	if resp := send(router, "GET", "/health", "", nil); resp.Code != http.StatusOK {
		t.Errorf("Expected health status 200, got %d", resp.Code)
	}
	if resp := send(router, "GET", "/swagger/doc.json", "", nil); resp.Code != http.StatusOK {
		t.Errorf("Expected swagger status 200, got %d", resp.Code)
	}
}

func TestWriteGuard(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("key"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	router := setupTestRouter(t, &config.Config{JWTSecret: "secret", APIKeyHash: string(hash)})
	token, _ := jwt.GenerateToken([]byte("secret"), "ops", time.Hour)
	body := `{"name":"Action"}`

	if resp := send(router, "POST", "/genre", body, nil); resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.Code)
	}
	if resp := send(router, "GET", "/genre", "", nil); resp.Code != http.StatusOK {
		t.Errorf("Expected reads to stay public, got %d", resp.Code)
	}
	if resp := send(router, "POST", "/genre", body, map[string]string{"Authorization": "Bearer " + token}); resp.Code != http.StatusCreated {
		t.Errorf("Expected status 201 with token, got %d", resp.Code)
	}
	if resp := send(router, "DELETE", "/genre/1", "", map[string]string{auth.APIKeyHeader: "key"}); resp.Code != http.StatusOK {
		t.Errorf("Expected status 200 with api key, got %d", resp.Code)
	}
}
