package http_test

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"soundcheck/internal/core/speech"
	phttp "soundcheck/internal/platform/net/http"
	"soundcheck/internal/services/speech/domain"
	speechhttp "soundcheck/internal/services/speech/http"
	"soundcheck/internal/services/speech/service"
)

type stubSummarizer struct {
	out string
	err error
}

func (s stubSummarizer) Summarize(context.Context, string) (string, error) { return s.out, s.err }

func newTestRouter(sum domain.SummarizerPort) stdhttp.Handler {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	svc := service.New(sum, service.Options{
		Budget:           time.Minute,
		Rate:             speech.NewRate(150),
		SummarizeTimeout: 100 * time.Millisecond,
	})
	speechhttp.Register(r, svc)
	return mux
}

func postJSON(t *testing.T, h stdhttp.Handler, path, body string) (*httptest.ResponseRecorder, phttp.Envelope) {
	t.Helper()
	req := httptest.NewRequest(stdhttp.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v\n%s", err, rec.Body.String())
	}
	return rec, env
}

func dataAs[T any](t *testing.T, env phttp.Envelope) T {
	t.Helper()
	raw, err := json.Marshal(env.Data)
	if err != nil {
		t.Fatalf("remarshal data: %v", err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	return out
}

func TestValidatePassWire(t *testing.T) {
	h := newTestRouter(stubSummarizer{})

	rec, env := postJSON(t, h, "/validate", `{"text":"Hello, how can I help you today?"}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", rec.Code, rec.Body.String())
	}

	res := dataAs[domain.ValidateResult](t, env)
	if res.Outcome != domain.OutcomePass || res.WasModified {
		t.Fatalf("bad result: %+v", res)
	}
	if res.FinalText != "Hello, how can I help you today?" {
		t.Fatalf("finalText changed: %q", res.FinalText)
	}

	// wire keys are a contract with the agent hook
	for _, key := range []string{"finalText", "estimatedSeconds", "wasModified", "outcome"} {
		if !strings.Contains(rec.Body.String(), `"`+key+`"`) {
			t.Fatalf("response missing wire key %q:\n%s", key, rec.Body.String())
		}
	}
}

func TestValidateRewrittenWire(t *testing.T) {
	h := newTestRouter(stubSummarizer{out: "a short summary of the long answer"})

	long := strings.TrimSpace(strings.Repeat("word ", 300))
	body, _ := json.Marshal(map[string]string{"text": long})
	rec, env := postJSON(t, h, "/validate", string(body))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	res := dataAs[domain.ValidateResult](t, env)
	if res.Outcome != domain.OutcomeRewritten || !res.WasModified {
		t.Fatalf("bad result: %+v", res)
	}
	if res.FinalText != "a short summary of the long answer" {
		t.Fatalf("finalText = %q", res.FinalText)
	}
}

func TestValidateDegradedWire(t *testing.T) {
	h := newTestRouter(stubSummarizer{err: errors.New("down")})

	long := strings.TrimSpace(strings.Repeat("word ", 300))
	body, _ := json.Marshal(map[string]string{"text": long})
	rec, env := postJSON(t, h, "/validate", string(body))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("degraded is still a 200, got %d", rec.Code)
	}
	res := dataAs[domain.ValidateResult](t, env)
	if res.Outcome != domain.OutcomeDegraded {
		t.Fatalf("outcome = %q, want degraded", res.Outcome)
	}
	if speech.WordCount(res.FinalText) != 150 {
		t.Fatalf("degraded text should be trimmed to 150 words, got %d", speech.WordCount(res.FinalText))
	}
}

func TestValidateMissingTextIsClientError(t *testing.T) {
	h := newTestRouter(stubSummarizer{})

	for _, body := range []string{`{}`, `{"text":""}`} {
		rec, env := postJSON(t, h, "/validate", body)
		if rec.Code != stdhttp.StatusBadRequest {
			t.Fatalf("body %s: status = %d, want 400", body, rec.Code)
		}
		if env.Error == "" {
			t.Fatalf("body %s: expected error message in envelope", body)
		}
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	h := newTestRouter(stubSummarizer{})
	rec, _ := postJSON(t, h, "/validate", `{"text": `)
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestValidateUnknownFieldRejected(t *testing.T) {
	h := newTestRouter(stubSummarizer{})
	rec, _ := postJSON(t, h, "/validate", `{"text":"hi","nope":1}`)
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestEstimateWire(t *testing.T) {
	h := newTestRouter(stubSummarizer{})

	rec, env := postJSON(t, h, "/estimate", `{"text":"one two three four five six seven eight"}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	res := dataAs[domain.EstimateResult](t, env)
	if res.EstimatedSeconds != 3.2 || res.WordCount != 8 || !res.WithinBudget {
		t.Fatalf("bad estimate: %+v", res)
	}
}
