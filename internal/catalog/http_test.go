package catalog_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"Bookshop/internal/catalog"
	"Bookshop/pkg/kit"
)

func newAdminTS(t *testing.T, store catalog.Reader, deps catalog.HTTPDeps) *httptest.Server {
	t.Helper()

	deps.Log = zap.NewNop()
	deps.Service = "bookshop"

	ts := httptest.NewServer(catalog.NewHandler(&catalog.Server{Store: store}, deps))
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func TestAdmin_ListAndGet(t *testing.T) {
	s := catalog.NewMemStore()
	s.Add("Dune", "Herbert", "spice")
	id := s.Add("Foundation", "Asimov", "psychohistory")
	if err := s.Purchase(id); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	ts := newAdminTS(t, s, catalog.HTTPDeps{})

	resp, raw := get(t, ts.URL+"/books", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status=%d body=%s", resp.StatusCode, raw)
	}

	var list []struct {
		ID   int `json:"id"`
		Book struct {
			Title     string `json:"title"`
			Available bool   `json:"available"`
		} `json:"book"`
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		t.Fatalf("decode list: %v body=%s", err, raw)
	}
	if len(list) != 2 || list[0].ID != 1 || list[1].ID != 2 {
		t.Fatalf("unexpected list: %+v", list)
	}
	if list[1].Book.Title != "Foundation" || list[1].Book.Available {
		t.Fatalf("unexpected entry: %+v", list[1])
	}

	resp, raw = get(t, ts.URL+"/books/1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status=%d body=%s", resp.StatusCode, raw)
	}
	if !strings.Contains(string(raw), `"title":"Dune"`) {
		t.Fatalf("get body=%s", raw)
	}
}

func TestAdmin_GetErrors(t *testing.T) {
	ts := newAdminTS(t, catalog.NewMemStore(), catalog.HTTPDeps{})

	resp, raw := get(t, ts.URL+"/books/42", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d body=%s", resp.StatusCode, raw)
	}
	var er kit.ErrorResponse
	if err := json.Unmarshal(raw, &er); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if er.Code != "not_found" || er.RequestID == "" {
		t.Fatalf("unexpected error body: %+v", er)
	}

	resp, raw = get(t, ts.URL+"/books/abc", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", resp.StatusCode, raw)
	}
}

func TestAdmin_MetricsRequiresToken(t *testing.T) {
	store := catalog.NewMemStore()
	store.Add("Dune", "Herbert", "")

	reg := prometheus.NewRegistry()
	metrics := kit.NewMetrics(reg)
	catalog.RegisterMetrics(reg, store)

	ts := newAdminTS(t, store, catalog.HTTPDeps{
		Registry:     reg,
		Metrics:      metrics,
		MetricsToken: "secret",
	})

	if resp, _ := get(t, ts.URL+"/metrics", nil); resp.StatusCode != http.StatusForbidden {
		t.Fatalf("no token: status=%d", resp.StatusCode)
	}
	if resp, _ := get(t, ts.URL+"/metrics", map[string]string{"Authorization": "Bearer nope"}); resp.StatusCode != http.StatusForbidden {
		t.Fatalf("wrong token: status=%d", resp.StatusCode)
	}

	resp, raw := get(t, ts.URL+"/metrics", map[string]string{"Authorization": "Bearer secret"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	if !strings.Contains(string(raw), "bookshop_books 1") {
		t.Fatalf("missing catalog gauge in:\n%s", raw)
	}
}

func TestAdmin_NoMetricsWithoutRegistry(t *testing.T) {
	ts := newAdminTS(t, catalog.NewMemStore(), catalog.HTTPDeps{})

	if resp, _ := get(t, ts.URL+"/metrics", map[string]string{"Authorization": "Bearer x"}); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d", resp.StatusCode)
	}
}

func TestAdmin_RateLimit(t *testing.T) {
	ts := newAdminTS(t, catalog.NewMemStore(), catalog.HTTPDeps{RatePerMinute: 2})

	for i := 0; i < 2; i++ {
		if resp, _ := get(t, ts.URL+"/healthz", nil); resp.StatusCode != http.StatusOK {
			t.Fatalf("request %d: status=%d", i, resp.StatusCode)
		}
	}
	if resp, _ := get(t, ts.URL+"/healthz", nil); resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status=%d", resp.StatusCode)
	}
}
