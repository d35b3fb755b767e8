//go:build !integration

package docs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFallsBackToEmbeddedSpec(t *testing.T) {
	content, contentType, appErr := NewFileOpenAPISpecReadModel("").Read(context.Background())
	require.Nil(t, appErr)
	assert.Contains(t, string(content), "openapi: 3.0.3")
	assert.Contains(t, string(content), "/v1/rates")
	assert.Equal(t, yamlContentType, contentType)
}

func TestReadUsesConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openapi: 3.0.3\n"), 0o600))

	content, _, appErr := NewFileOpenAPISpecReadModel(path).Read(context.Background())
	require.Nil(t, appErr)
	assert.Equal(t, "openapi: 3.0.3\n", string(content))
}

func TestReadReportsMissingFile(t *testing.T) {
	_, _, appErr := NewFileOpenAPISpecReadModel(filepath.Join(t.TempDir(), "missing.yaml")).Read(context.Background())
	require.NotNil(t, appErr)
	assert.Equal(t, "openapi_file_read_failed", appErr.Code)
}
