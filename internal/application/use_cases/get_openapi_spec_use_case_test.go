//go:build !integration

package use_cases

import (
	"context"
	"testing"

	"lendit/internal/application/dto"
	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOpenAPIReadModel struct {
	content []byte
	appErr  *apperrors.AppError
}

func (s stubOpenAPIReadModel) Read(context.Context) ([]byte, string, *apperrors.AppError) {
	return s.content, "application/yaml; charset=utf-8", s.appErr
}

func TestGetOpenAPISpecUseCase(t *testing.T) {
	output, appErr := NewGetOpenAPISpecUseCase(stubOpenAPIReadModel{content: []byte("openapi: 3.0.3")}).
		Execute(context.Background(), dto.GetOpenAPISpecQuery{})
	require.Nil(t, appErr)
	assert.Equal(t, "openapi: 3.0.3", string(output.Content))
	assert.Equal(t, "application/yaml; charset=utf-8", output.ContentType)

	_, appErr = NewGetOpenAPISpecUseCase(stubOpenAPIReadModel{}).Execute(context.Background(), dto.GetOpenAPISpecQuery{})
	require.NotNil(t, appErr)
	assert.Equal(t, "openapi_spec_empty", appErr.Code)

	readErr := apperrors.NewInternal("openapi_file_read_failed", "failed", nil)
	_, appErr = NewGetOpenAPISpecUseCase(stubOpenAPIReadModel{appErr: readErr}).Execute(context.Background(), dto.GetOpenAPISpecQuery{})
	assert.Equal(t, readErr, appErr)
}
