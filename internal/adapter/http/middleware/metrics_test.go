package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/api/accounts", "/api/accounts"},
		{"/api/accounts/42", "/api/accounts/:id"},
		{"/api/accounts/42/balance", "/api/accounts/:id/balance"},
		{"/api/accounts/transfer", "/api/accounts/transfer"},
		{"/api/accounts/by-name/Kevin", "/api/accounts/by-name/:name"},
		{"/api/banks/1", "/api/banks/:id"},
		{"/api/banks/1/transfers", "/api/banks/:id/transfers"},
		{"/health", "/health"},
		{"/metrics", "/metrics"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.in); got != tt.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
