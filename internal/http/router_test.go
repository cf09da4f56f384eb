package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aniteca/go-anime-backend/internal/config"
)

// baseConfig returns a Config suitable for router tests. The AniList URL
// points at the given upstream (may be a httptest server) so no test ever
// reaches the public API.
func baseConfig(upstreamURL string) config.Config {
	return config.Config{
		APIBasePath:     "/api",
		RateRPS:         100,
		RateBurst:       50,
		CORS:            config.CORSConfig{AllowedOrigins: nil}, // allow-all branch
		Security:        config.SecurityConfig{EnableHSTS: false, HSTSMaxAge: 0},
		OTEL:            config.OTELConfig{ServiceName: "test-svc"},
		AniListURL:      upstreamURL,
		AniListTimeout:  2 * time.Second,
		RetryWait:       time.Millisecond,
		CatalogCacheTTL: time.Minute,
		GenreCacheTTL:   time.Minute,
	}
}

// fakeUpstream answers every GraphQL POST with an empty page and an empty
// genre collection, which is enough for the catalog endpoints to return 200.
func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"Page":{"media":[]},"GenreCollection":["Action"]}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRegisterRoutes_CORSAllowAll_Health_Metrics_Fallbacks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, baseConfig(fakeUpstream(t).URL))

	// /health works
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	// CORS (AllowAllOrigins) → header "*"
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("AllowAllOrigins expected '*', got %q", got)
	}

	// /metrics is wired
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || len(w.Body.Bytes()) == 0 {
		t.Fatalf("GET /metrics bad: code=%d len=%d", w.Code, w.Body.Len())
	}

	// NoRoute → 404 with the standard error envelope
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/nope", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /nope expected 404, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid 404 body: %v", err)
	}
	if body["codigo"] != "ROTA_NAO_ENCONTRADA" {
		t.Fatalf("unexpected 404 body: %v", body)
	}

	// NoMethod → 405 (POST /health)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /health expected 405, got %d", w.Code)
	}
}

func TestRegisterRoutes_CORSWithOrigins_HeaderEcho(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := baseConfig(fakeUpstream(t).URL)
	cfg.CORS = config.CORSConfig{AllowedOrigins: []string{"http://example.com"}}
	RegisterRoutes(r, cfg)

	// Any request runs through CORS middleware; header should reflect origin.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://example.com")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://example.com" {
		t.Fatalf("expected ACAO echo, got %q", got)
	}
}

func TestRegisterRoutes_CatalogAndFavoritesMounted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, baseConfig(fakeUpstream(t).URL))

	// Catalog list endpoint reaches the fake upstream and returns the envelope.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/animes/populares", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/animes/populares = %d body=%s", w.Code, w.Body.String())
	}
	var env map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if env["sucesso"] != true {
		t.Fatalf("expected sucesso=true, got %v", env)
	}

	// Genre list goes through the gateway cache.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/animes/generos", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/animes/generos = %d", w.Code)
	}

	// Favorites listing works without any upstream call.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/favoritos/usuario/u1", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/favoritos/usuario/u1 = %d body=%s", w.Code, w.Body.String())
	}

	// Static catalog segments must not be captured by /:id.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/animes/search", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("GET /api/animes/search without term expected 400, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["codigo"] != "TERMO_OBRIGATORIO" {
		t.Fatalf("expected TERMO_OBRIGATORIO, got %v", body)
	}
}

func Test_limitBody_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// tiny cap to trigger MaxBytesReader
	r.Use(limitBody(10))
	r.POST("/echo", func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too big")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("0123456789AB")) // 12 bytes
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 from limitBody, got %d", w.Code)
	}
}

func Test_groupWithPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// "/" and "" should mount at root
	root1 := groupWithPrefix(r, "/")
	root1.GET("/one", func(c *gin.Context) { c.String(http.StatusOK, "one") })
	root2 := groupWithPrefix(r, "")
	root2.GET("/two", func(c *gin.Context) { c.String(http.StatusOK, "two") })

	// non-root prefix
	api := groupWithPrefix(r, "/api")
	api.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	// Hit all three
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/one", nil)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "one" {
		t.Fatalf("GET /one got %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/two", nil)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "two" {
		t.Fatalf("GET /two got %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("GET /api/ping got %d %q", rec.Code, rec.Body.String())
	}
}

// Smoke test that a request traverses otel + ratelimit + gzip + security headers pipeline.
func TestPipeline_Smoke(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := baseConfig(fakeUpstream(t).URL)
	cfg.Security = config.SecurityConfig{EnableHSTS: true, HSTSMaxAge: time.Hour} // only set on https
	RegisterRoutes(r, cfg)

	// Any request goes through the middleware stack
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	// simulate https so HSTS could be eligible if middleware checks scheme
	req.URL.Scheme = "https"
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("pipeline GET /health = %d", w.Code)
	}
	// RequestID header should be present (from RequestID middleware)
	if rid := w.Header().Get("X-Request-ID"); rid == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
}

func TestFavoriteLifecycle_OverHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// Upstream that returns one concrete media record for detail lookups.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"Media":{
			"id":101,
			"title":{"romaji":"Cowboy Bebop"},
			"coverImage":{"large":"http://img/large.png"},
			"genres":["Action"],
			"averageScore":86,
			"status":"FINISHED",
			"seasonYear":1998,
			"episodes":26,
			"studios":{"nodes":[{"name":"Sunrise"}]}
		}}}`))
	}))
	t.Cleanup(srv.Close)
	RegisterRoutes(r, baseConfig(srv.URL))

	// Add
	w := httptest.NewRecorder()
	payload := `{"animeId":101,"usuarioId":"u1","nota":8.5,"comentario":"classic"}`
	req := httptest.NewRequest(http.MethodPost, "/api/favoritos", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/favoritos = %d body=%s", w.Code, w.Body.String())
	}

	// Duplicate add → 409
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/favoritos", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate POST expected 409, got %d", w.Code)
	}

	// Verify
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/favoritos/101/u1/verificar", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET verificar = %d", w.Code)
	}
	var env struct {
		Sucesso bool `json:"sucesso"`
		Dados   struct {
			EFavorito bool `json:"eFavorito"`
		} `json:"dados"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid verify body: %v", err)
	}
	if !env.Sucesso || !env.Dados.EFavorito {
		t.Fatalf("expected eFavorito=true, got %s", w.Body.String())
	}

	// Remove
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/favoritos/101/u1", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("DELETE = %d body=%s", w.Code, w.Body.String())
	}

	// Remove again → 404
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/favoritos/101/u1", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second DELETE expected 404, got %d", w.Code)
	}
}
