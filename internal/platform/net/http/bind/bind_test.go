package bind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "soundcheck/internal/platform/errors"
	"soundcheck/internal/platform/net/http/bind"
)

type payload struct {
	Text string `json:"text" validate:"required"`
	Max  int    `json:"max"  validate:"omitempty,min=1"`
}

func post(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestParseJSONHappyPath(t *testing.T) {
	got, err := bind.ParseJSON[payload](post(`{"text":"hello","max":3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "hello" || got.Max != 3 {
		t.Fatalf("bad parse: %+v", got)
	}
}

func TestParseJSONEmptyBody(t *testing.T) {
	_, err := bind.ParseJSON[payload](post(""))
	if err == nil {
		t.Fatalf("expected error for empty body")
	}
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("code = %v, want json", perr.CodeOf(err))
	}
}

func TestParseJSONEmptyBodyToleratedOnGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", strings.NewReader(""))
	got, err := bind.ParseJSON[payload](req)
	if err != nil {
		t.Fatalf("GET with empty body should parse to zero value, got %v", err)
	}
	if got.Text != "" {
		t.Fatalf("expected zero value, got %+v", got)
	}
}

func TestParseJSONMalformed(t *testing.T) {
	_, err := bind.ParseJSON[payload](post(`{"text": `))
	if err == nil || perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("want json error, got %v", err)
	}
}

func TestParseJSONUnknownField(t *testing.T) {
	_, err := bind.ParseJSON[payload](post(`{"text":"hi","extra":true}`))
	if err == nil || perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("want json error for unknown field, got %v", err)
	}
}

func TestParseJSONTrailingData(t *testing.T) {
	_, err := bind.ParseJSON[payload](post(`{"text":"hi"}{"text":"again"}`))
	if err == nil || perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("want json error for trailing data, got %v", err)
	}
}

func TestParseJSONValidationUsesJSONNames(t *testing.T) {
	_, err := bind.ParseJSON[payload](post(`{}`))
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("code = %v, want validation", perr.CodeOf(err))
	}
	e, ok := perr.As(err)
	if !ok || e.Field() != "text" {
		t.Fatalf("field = %q, want json tag name", e.Field())
	}

	_, err = bind.ParseJSON[payload](post(`{"text":"hi","max":0}`))
	if err != nil {
		t.Fatalf("omitempty min should accept zero value, got %v", err)
	}

	_, err = bind.ParseJSON[payload](post(`{"text":"hi","max":-2}`))
	if err == nil || perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("want validation error for min, got %v", err)
	}
}
