package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"escrow": map[string]any{
			"disburseDelay": "3s",
		},
		"marketplace": map[string]any{
			"platformDeliveryFee": 150,
		},
		"remote": map[string]any{
			"authBaseUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "ESCROW_DISBURSEDELAY", want: "escrow.disburseDelay"},
		{envKey: "MARKETPLACE_PLATFORMDELIVERYFEE", want: "marketplace.platformDeliveryFee"},
		{envKey: "REMOTE_AUTHBASEURL", want: "remote.authBaseUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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
