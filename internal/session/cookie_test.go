package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSet(t *testing.T) {
	cfg := Config{TTL: 7 * 24 * time.Hour, Secure: true}
	rec := httptest.NewRecorder()

	cfg.Set(rec, "tok-123")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName || c.Value != "tok-123" {
		t.Errorf("unexpected cookie %s=%s", c.Name, c.Value)
	}
	if !c.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if !c.Secure {
		t.Error("cookie must be Secure in production config")
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Error("cookie must be SameSite=Strict")
	}
	if c.MaxAge != int((7 * 24 * time.Hour).Seconds()) {
		t.Errorf("MaxAge = %d, want token TTL", c.MaxAge)
	}
}

func TestSetDevelopmentNotSecure(t *testing.T) {
	cfg := Config{TTL: time.Hour, Secure: false}
	rec := httptest.NewRecorder()

	cfg.Set(rec, "tok-123")

	if rec.Result().Cookies()[0].Secure {
		t.Error("development cookie must not set Secure")
	}
}

// Clearing must reuse the attributes Set used, or browsers keep the cookie.
func TestClearMatchesSetAttributes(t *testing.T) {
	cfg := Config{TTL: time.Hour, Secure: true}

	setRec := httptest.NewRecorder()
	cfg.Set(setRec, "tok-123")
	set := setRec.Result().Cookies()[0]

	clearRec := httptest.NewRecorder()
	cfg.Clear(clearRec)
	cleared := clearRec.Result().Cookies()[0]

	if cleared.Name != set.Name || cleared.Path != set.Path ||
		cleared.HttpOnly != set.HttpOnly || cleared.Secure != set.Secure ||
		cleared.SameSite != set.SameSite {
		t.Error("Clear() attributes must match Set() attributes")
	}
	if cleared.MaxAge >= 0 {
		t.Errorf("Clear() MaxAge = %d, want negative", cleared.MaxAge)
	}
	if cleared.Value != "" {
		t.Errorf("Clear() value = %q, want empty", cleared.Value)
	}
}

func TestRead(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := Read(r); got != "" {
		t.Errorf("Read() = %q, want empty without cookie", got)
	}

	r.AddCookie(&http.Cookie{Name: CookieName, Value: "tok-123"})
	if got := Read(r); got != "tok-123" {
		t.Errorf("Read() = %q, want tok-123", got)
	}
}
