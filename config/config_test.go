package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"auth": map[string]any{
			"tokenSecret": "",
			"tokenTTL":    "24h",
		},
		"passwordPolicy": map[string]any{
			"minLength": 8,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "AUTH_TOKENSECRET", want: "auth.tokenSecret"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "PASSWORDPOLICY_MINLENGTH", want: "passwordPolicy.minLength"},
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

func TestPolicy_DefaultsWhenSectionAbsent(t *testing.T) {
	cfg := &Config{}

	policy := cfg.Policy()
	if policy.MinLength != 8 {
		t.Fatalf("default MinLength = %d, want 8", policy.MinLength)
	}
	if !policy.RequireUppercase || !policy.RequireLowercase || !policy.RequireDigit {
		t.Fatal("default policy must require uppercase, lowercase and digit")
	}
}
