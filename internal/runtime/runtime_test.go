package runtime

import (
	"context"
	"os"
	"testing"
	"time"

	"kiroua/fingerprint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator_DefaultWithoutSeed(t *testing.T) {
	os.Unsetenv("FINGERPRINT_SEED")
	assert.Same(t, fingerprint.Default(), NewGenerator())
}

func TestNewGenerator_InvalidSeedFallsBack(t *testing.T) {
	t.Setenv("FINGERPRINT_SEED", "abc")
	assert.Same(t, fingerprint.Default(), NewGenerator())
}

func TestNewGenerator_SeedIsReproducible(t *testing.T) {
	t.Setenv("FINGERPRINT_SEED", "1234")

	a := NewGenerator().BuildIdentityHeaders("0.8.0")
	b := NewGenerator().BuildIdentityHeaders("0.8.0")
	assert.Equal(t, a, b)
}

func TestNew_UsesConfiguredVersion(t *testing.T) {
	t.Setenv("GIN_MODE", "test")
	t.Setenv("KIRO_VERSION", "0.9.0")

	rt, err := New(Options{Port: "0"})
	require.NoError(t, err)
	assert.Equal(t, "0.9.0", rt.HeaderManager().KiroVersion())
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Setenv("GIN_MODE", "test")

	rt, err := New(Options{Port: "0", KiroVersion: "0.8.0"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rt.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("服务器未在超时内退出")
	}
}
