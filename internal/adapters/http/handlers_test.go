package httpadapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/generator"
	"svw.info/minesweeper/internal/infrastructure/memstore"
	"svw.info/minesweeper/internal/logging"
	"svw.info/minesweeper/internal/usecase"
	"svw.info/minesweeper/internal/viewmodel"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logging.Discard()
	uc := usecase.NewService(generator.NewShuffleGenerator(), memstore.New(), log)
	uc.MaxCells = 10000
	return New(uc, domain.DefaultConfig(), nil, log).Router()
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) viewmodel.GameView {
	t.Helper()
	var v viewmodel.GameView
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func TestNewGameDefaults(t *testing.T) {
	r := newRouter()
	w := do(t, r, http.MethodPost, "/api/games", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("missing request ID header")
	}
	v := decodeView(t, w)
	if v.Rows != 8 || v.Columns != 5 || v.Bombs != 6 || v.State != domain.Playing {
		t.Fatalf("unexpected default game %+v", v)
	}
	if len(v.Cells) != 8 || len(v.Cells[0]) != 5 {
		t.Fatalf("cells shape %dx%d", len(v.Cells), len(v.Cells[0]))
	}
}

func TestRevealFlow(t *testing.T) {
	r := newRouter()
	w := do(t, r, http.MethodPost, "/api/games", `{"rows":3,"columns":3,"bombs":0,"seed":4}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	v := decodeView(t, w)
	if v.Seed != 4 {
		t.Fatalf("seed = %d, want 4", v.Seed)
	}

	w = do(t, r, http.MethodPost, "/api/games/"+v.ID+"/reveal", `{"row":0,"col":0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("reveal status = %d, body %s", w.Code, w.Body)
	}
	v = decodeView(t, w)
	if v.State != domain.Won {
		t.Fatalf("state = %v, want won", v.State)
	}

	w = do(t, r, http.MethodGet, "/api/games/"+v.ID, "")
	if w.Code != http.StatusOK || decodeView(t, w).State != domain.Won {
		t.Fatalf("view status = %d, body %s", w.Code, w.Body)
	}
}

func TestErrorStatuses(t *testing.T) {
	r := newRouter()
	v := decodeView(t, do(t, r, http.MethodPost, "/api/games", `{"rows":2,"columns":2,"bombs":1}`))

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"invalid config", http.MethodPost, "/api/games", `{"rows":2,"columns":2,"bombs":4}`, http.StatusBadRequest},
		{"board too large", http.MethodPost, "/api/games", `{"rows":100000,"columns":100000,"bombs":1}`, http.StatusBadRequest},
		{"restart too large", http.MethodPost, "/api/games/" + v.ID + "/restart", `{"rows":100000}`, http.StatusBadRequest},
		{"bad json", http.MethodPost, "/api/games", `{"rows":`, http.StatusBadRequest},
		{"missing col", http.MethodPost, "/api/games/" + v.ID + "/reveal", `{"row":0}`, http.StatusBadRequest},
		{"out of bounds", http.MethodPost, "/api/games/" + v.ID + "/reveal", `{"row":5,"col":0}`, http.StatusUnprocessableEntity},
		{"unknown game", http.MethodGet, "/api/games/nope", "", http.StatusNotFound},
		{"reveal unknown", http.MethodPost, "/api/games/nope/reveal", `{"row":0,"col":0}`, http.StatusNotFound},
		{"delete unknown", http.MethodDelete, "/api/games/nope", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, r, tc.method, tc.path, tc.body)
			if w.Code != tc.want {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tc.want, w.Body)
			}
			var e errorResp
			if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil || e.Error == "" {
				t.Fatalf("missing error body: %s", w.Body)
			}
		})
	}
}

func TestRestartListDelete(t *testing.T) {
	r := newRouter()
	v := decodeView(t, do(t, r, http.MethodPost, "/api/games", `{"rows":4,"columns":4,"bombs":2}`))

	w := do(t, r, http.MethodPost, "/api/games/"+v.ID+"/restart", `{"bombs":5,"seed":9}`)
	if w.Code != http.StatusOK {
		t.Fatalf("restart status = %d, body %s", w.Code, w.Body)
	}
	rv := decodeView(t, w)
	if rv.ID != v.ID || rv.Rows != 4 || rv.Columns != 4 || rv.Bombs != 5 || rv.Seed != 9 {
		t.Fatalf("unexpected restarted game %+v", rv)
	}

	w = do(t, r, http.MethodPost, "/api/games/"+v.ID+"/restart", "")
	if w.Code != http.StatusOK || decodeView(t, w).Bombs != 5 {
		t.Fatalf("plain restart status = %d, body %s", w.Code, w.Body)
	}

	w = do(t, r, http.MethodGet, "/api/games", "")
	var list listResp
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list.Games) != 1 {
		t.Fatalf("list = %s (%v)", w.Body, err)
	}
	if list.Games[0].ID != v.ID || list.Games[0].Config.Bombs != 5 {
		t.Fatalf("unexpected list entry %+v", list.Games[0])
	}

	if w := do(t, r, http.MethodDelete, "/api/games/"+v.ID, ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/games/"+v.ID, ""); w.Code != http.StatusNotFound {
		t.Fatalf("view after delete status = %d", w.Code)
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := newRouter()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Header().Get(requestIDHeader) != "abc-123" {
		t.Fatalf("status=%d id=%q", w.Code, w.Header().Get(requestIDHeader))
	}
}
