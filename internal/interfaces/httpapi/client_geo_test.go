package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "forwarded chain", headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, remote: "10.0.0.2:1234", want: "203.0.113.7"},
		{name: "fly header wins", headers: map[string]string{"Fly-Client-IP": "198.51.100.4", "X-Real-IP": "10.0.0.9"}, remote: "10.0.0.2:1234", want: "198.51.100.4"},
		{name: "remote addr fallback", remote: "192.0.2.10:5555", want: "192.0.2.10"},
		{name: "garbage", headers: map[string]string{"X-Real-IP": "not-an-ip"}, remote: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/tables", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := resolveClientIP(req); got != tt.want {
				t.Fatalf("resolveClientIP()=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestResolveCountryCode(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/tables", nil)
	if got := resolveCountryCode(req); got != "ZZ" {
		t.Fatalf("expected ZZ without headers, got %q", got)
	}

	req.Header.Set("CF-IPCountry", "in")
	if got := resolveCountryCode(req); got != "IN" {
		t.Fatalf("expected IN, got %q", got)
	}
}
