package http_test

import (
	stdctx "context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	phttp "soundcheck/internal/platform/net/http"
	metahttp "soundcheck/internal/services/meta/http"
)

type pinger struct{ err error }

func (p pinger) Ping(stdctx.Context) error { return p.err }

func newMeta(sum any) stdhttp.Handler {
	mux := chi.NewRouter()
	metahttp.Register(phttp.AdaptChi(mux), metahttp.Deps{
		ServiceName: "soundcheck-api",
		StartedAt:   time.Now().Add(-time.Minute),
		Summarizer:  sum,
	})
	return mux
}

func get(t *testing.T, h stdhttp.Handler, path string) phttp.Envelope {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("%s: status = %d", path, rec.Code)
	}
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s: bad envelope: %v", path, err)
	}
	return env
}

func TestHealth(t *testing.T) {
	env := get(t, newMeta(nil), "/health")
	m, _ := env.Data.(map[string]any)
	if m["ok"] != true || m["service"] != "soundcheck-api" {
		t.Fatalf("bad health payload: %+v", env.Data)
	}
}

func TestReadyStates(t *testing.T) {
	cases := []struct {
		name string
		sum  any
		want string
	}{
		{"summarizer up", pinger{}, "ok"},
		{"summarizer down", pinger{err: errors.New("503")}, "degraded"},
		{"no summarizer wired", nil, "degraded"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			env := get(t, newMeta(c.sum), "/ready")
			m, _ := env.Data.(map[string]any)
			if m["status"] != c.want {
				t.Fatalf("status = %v, want %s", m["status"], c.want)
			}
		})
	}
}

func TestVersionAndService(t *testing.T) {
	env := get(t, newMeta(nil), "/version")
	m, _ := env.Data.(map[string]any)
	if m["service"] != "soundcheck-api" {
		t.Fatalf("bad version payload: %+v", env.Data)
	}

	env = get(t, newMeta(nil), "/service")
	m, _ = env.Data.(map[string]any)
	if m["name"] != "soundcheck-api" {
		t.Fatalf("bad service payload: %+v", env.Data)
	}
	if up, ok := m["uptime"].(float64); !ok || up < 59 {
		t.Fatalf("uptime = %v", m["uptime"])
	}
}
