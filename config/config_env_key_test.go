package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"connectTimeout": "10s",
		},
		"token": map[string]any{
			"accessSecret":  "",
			"refreshExpiry": "240h",
		},
		"storage": map[string]any{
			"publicBaseURL": "",
		},
		"rateLimit": map[string]any{
			"requestsPerSecond": 1,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_CONNECTTIMEOUT", want: "mongo.connectTimeout"},
		{envKey: "TOKEN_ACCESSSECRET", want: "token.accessSecret"},
		{envKey: "TOKEN_REFRESH_EXPIRY", want: "token.refresh.expiry"},
		{envKey: "STORAGE_PUBLICBASEURL", want: "storage.publicBaseURL"},
		{envKey: "RATELIMIT_REQUESTSPERSECOND", want: "rateLimit.requestsPerSecond"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
