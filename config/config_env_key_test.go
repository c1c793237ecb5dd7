package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"llm": map[string]any{
			"apiKey": "",
			"model":  "gemini-2.0-flash",
		},
		"firebase": map[string]any{
			"credentialsPath": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"auth": map[string]any{
			"jwtSecret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "LLM_APIKEY", want: "llm.apiKey"},
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "AUTH_JWTSECRET", want: "auth.jwtSecret"},
		{envKey: "STORAGE_PROVIDER", want: "storage.provider"},
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

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	require.NotNil(t, cfg.Auth)
	require.NotNil(t, cfg.Storage)
	require.NotNil(t, cfg.Firebase)
	require.NotNil(t, cfg.Encryption)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "firebase", cfg.Auth.Provider)
	assert.Equal(t, "firestore", cfg.Storage.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)
	assert.Equal(t, time.Minute, cfg.LLM.Timeout)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, 30*time.Second, cfg.Stream.PingInterval)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Storage: &StorageConfig{Provider: "memory"},
		LLM:     &LLMConfig{Model: "gemini-2.5-pro", Timeout: 5 * time.Second},
	}
	cfg.applyDefaults()

	assert.Equal(t, "memory", cfg.Storage.Provider)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
}
