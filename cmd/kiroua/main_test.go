package main

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"kiroua/fingerprint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintIdentity_DefaultVersion(t *testing.T) {
	os.Unsetenv("KIRO_VERSION")
	os.Unsetenv("FINGERPRINT_SEED")

	var buf bytes.Buffer
	require.NoError(t, printIdentity(&buf, nil))

	var identity fingerprint.IdentityHeaders
	require.NoError(t, json.Unmarshal(buf.Bytes(), &identity))
	assert.Equal(t, "spec", identity.AgentMode)
	assert.Contains(t, identity.XAmzUserAgent, "KiroIDE-0.8.0-")
}

func TestPrintIdentity_ArgOverridesVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printIdentity(&buf, []string{"0.10.1"}))
	assert.Contains(t, buf.String(), "KiroIDE-0.10.1-")
}

func TestPrintIdentity_SeedIsReproducible(t *testing.T) {
	t.Setenv("FINGERPRINT_SEED", "5")

	var a, b bytes.Buffer
	require.NoError(t, printIdentity(&a, []string{"0.8.0"}))
	require.NoError(t, printIdentity(&b, []string{"0.8.0"}))
	assert.Equal(t, a.String(), b.String())
}
