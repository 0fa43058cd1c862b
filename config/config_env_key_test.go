package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"commerce": map[string]any{
			"baseUrl": "http://localhost:8000",
		},
		"identity": map[string]any{
			"adminEmail":     "",
			"googleClientId": "",
		},
		"storage": map[string]any{
			"bucketUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "COMMERCE_BASEURL", want: "commerce.baseUrl"},
		{envKey: "IDENTITY_ADMINEMAIL", want: "identity.adminEmail"},
		{envKey: "IDENTITY_GOOGLECLIENTID", want: "identity.googleClientId"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
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
