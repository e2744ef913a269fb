package util

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewProxyFunc_ExplicitHTTPSProxy(t *testing.T) {
	proxy := NewProxyFunc("http://plain.proxy:3128", "http://secure.proxy:3128")

	req := httptest.NewRequest(http.MethodGet, "https://news.google.com/rss", nil)
	u, err := proxy(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil || u.Host != "secure.proxy:3128" {
		t.Errorf("https request should use the https proxy, got %v", u)
	}
}

func TestNewProxyFunc_FallsBackToHTTPProxy(t *testing.T) {
	proxy := NewProxyFunc("http://plain.proxy:3128", "")

	req := httptest.NewRequest(http.MethodGet, "https://news.google.com/rss", nil)
	u, err := proxy(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil || u.Host != "plain.proxy:3128" {
		t.Errorf("expected the http proxy as fallback, got %v", u)
	}
}
