package docs

import (
	"context"
	"os"

	"lendit/api"
	portsout "lendit/internal/application/ports/out"
	apperrors "lendit/internal/shared_kernel/errors"
)

const yamlContentType = "application/yaml; charset=utf-8"

// FileOpenAPISpecReadModel serves the contract from disk when a path is
// configured and falls back to the copy compiled into the binary.
type FileOpenAPISpecReadModel struct {
	path string
}

var _ portsout.OpenAPISpecReadModel = (*FileOpenAPISpecReadModel)(nil)

func NewFileOpenAPISpecReadModel(path string) *FileOpenAPISpecReadModel {
	return &FileOpenAPISpecReadModel{
		path: path,
	}
}

func (r *FileOpenAPISpecReadModel) Read(_ context.Context) ([]byte, string, *apperrors.AppError) {
	if r.path == "" {
		return api.OpenAPISpec, yamlContentType, nil
	}

	content, err := os.ReadFile(r.path)
	if err != nil {
		return nil, "", apperrors.NewInternal(
			"openapi_file_read_failed",
			"failed to read OpenAPI spec file",
			map[string]any{"path": r.path, "error": err.Error()},
		)
	}

	return content, yamlContentType, nil
}
