package middleware

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/pkg/tokens"
)

const contextKeyUpload = "upload"

// TempUpload parks the multipart file named field in tempDir for the rest of the request.
// Whatever the handler did not relocate is removed once the request finishes.
func TempUpload(field, tempDir string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !strings.HasPrefix(ctx.ContentType(), "multipart/form-data") {
			ctx.Next()
			return
		}

		file, err := ctx.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			ctx.Next()
			return
		}
		if err != nil {
			// Malformed multipart bodies are reported by the handler's bind.
			ctx.Next()
			return
		}

		path := filepath.Join(tempDir, tokens.TempName(file.Filename))
		if err = ctx.SaveUploadedFile(file, path); err != nil {
			zap.L().Error("failed to save upload", zap.String("field", field), zap.Error(err))
			ctx.Next()
			return
		}
		defer func() {
			if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				zap.L().Warn("failed to remove temporary upload", zap.String("path", path), zap.Error(err))
			}
		}()

		ctx.Set(contextKeyUpload, &domain.Upload{
			TempPath:     path,
			OriginalName: file.Filename,
		})
		ctx.Next()
	}
}

// Upload returns the file TempUpload parked, if any.
func Upload(ctx *gin.Context) *domain.Upload {
	v, ok := ctx.Get(contextKeyUpload)
	if !ok {
		return nil
	}
	upload, _ := v.(*domain.Upload)

	return upload
}
