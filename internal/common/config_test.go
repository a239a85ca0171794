package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdutoit/policyparse/internal/corpus"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("PDFTOTEXT", "")
	t.Setenv("PDFTOTEXT_TIMEOUT", "")

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, int64(32<<20), cfg.Server.MaxUploadBytes)

	// The provider section is the provider's own config type, handed to
	// corpus.NewProvider as-is.
	assert.Equal(t, corpus.ProviderConfig{
		Pdftotext: "pdftotext",
		Timeout:   60 * time.Second,
	}, cfg.Provider)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("PDFTOTEXT", "/opt/poppler/bin/pdftotext")
	t.Setenv("PDFTOTEXT_TIMEOUT", "5s")

	cfg := LoadConfig()
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/opt/poppler/bin/pdftotext", cfg.Provider.Pdftotext)
	assert.Equal(t, 5*time.Second, cfg.Provider.Timeout)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.Validate())

	cfg.Server.Addr = ":8080"
	cfg.Server.MaxUploadBytes = -1
	require.Error(t, cfg.Validate())

	cfg.Server.MaxUploadBytes = 1 << 20
	require.NoError(t, cfg.Validate())
}
