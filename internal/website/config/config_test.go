package config

import "testing"

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		port     string
		apiURL   string
		wantPort string
		wantAPI  string
	}{
		{"defaults", "", "", ":4002", "http://localhost:8001"},
		{"bare port", "8080", "https://api.lotaya.ai/", ":8080", "https://api.lotaya.ai"},
		{"prefixed port", ":9000", " http://api:8001 ", ":9000", "http://api:8001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WEBSITE_PORT", tt.port)
			t.Setenv("LOTAYA_API_URL", tt.apiURL)

			cfg := Load()
			if cfg.Port != tt.wantPort {
				t.Errorf("Port = %q, want %q", cfg.Port, tt.wantPort)
			}
			if cfg.APIURL != tt.wantAPI {
				t.Errorf("APIURL = %q, want %q", cfg.APIURL, tt.wantAPI)
			}
		})
	}
}
