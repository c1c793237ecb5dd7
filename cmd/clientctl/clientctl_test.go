package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"clientverse/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleSnapshot() *entity.ClientSnapshot {
	return &entity.ClientSnapshot{
		Clients: []*entity.Client{
			{
				ID:                "c1",
				ClientName:        "Asha Verma",
				IncomeTaxPassword: "secret",
				Mobiles:           []entity.Mobile{{Value: "98100"}},
			},
		},
		ReadTime: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestWriteSnapshot_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeSnapshot(&out, sampleSnapshot(), "json"))

	var got entity.ClientSnapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got.Clients, 1)
	assert.Equal(t, "Asha Verma", got.Clients[0].ClientName)
}

func TestWriteSnapshot_YAMLUsesAPIFieldNames(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeSnapshot(&out, sampleSnapshot(), "YAML"))

	text := out.String()
	assert.Contains(t, text, "clientName: Asha Verma")
	assert.Contains(t, text, "- value: \"98100\"")
	assert.NotContains(t, text, "{")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Contains(t, decoded, "clients")
	assert.Contains(t, decoded, "readTime")
}

func TestWriteSnapshot_UnknownFormat(t *testing.T) {
	err := writeSnapshot(&bytes.Buffer{}, sampleSnapshot(), "csv")
	assert.ErrorContains(t, err, "unknown format")
}

func TestRedactSecrets(t *testing.T) {
	snapshot := sampleSnapshot()

	redacted := redactSecrets(snapshot)

	assert.Empty(t, redacted.Clients[0].IncomeTaxPassword)
	assert.Equal(t, "secret", snapshot.Clients[0].IncomeTaxPassword)
	assert.Equal(t, snapshot.ReadTime, redacted.ReadTime)
}

func TestExportCmd_RequiresUser(t *testing.T) {
	_, err := runCLI(t, "export")
	assert.ErrorContains(t, err, "--user is required")
}

func TestExportCmd_EmptyMemoryStore(t *testing.T) {
	out, err := runCLI(t, "export", "--user", "uid-1")
	require.NoError(t, err)

	var got entity.ClientSnapshot
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Empty(t, got.Clients)
}

func TestTokenCmd_IssuesVerifiableToken(t *testing.T) {
	out, err := runCLI(t, "token", "--user", "uid-1", "--ttl", "5m")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(strings.TrimSpace(out), claims)
	require.NoError(t, err)

	assert.Equal(t, "uid-1", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenCmd_RequiresUser(t *testing.T) {
	_, err := runCLI(t, "token")
	assert.ErrorContains(t, err, "--user is required")
}
