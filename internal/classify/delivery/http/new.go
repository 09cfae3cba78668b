package http

import (
	"github.com/gin-gonic/gin"

	"fish-classification-website/internal/classify"
	"fish-classification-website/pkg/log"
)

// Handler is the public interface for the classify HTTP delivery layer.
type Handler interface {
	Classify(c *gin.Context)
}

type handler struct {
	l         log.Logger
	uc        classify.UseCase
	uploadDir string
}

// New creates a new HTTP handler for the classify domain. Uploaded images
// are staged under uploadDir for the duration of one request.
func New(l log.Logger, uc classify.UseCase, uploadDir string) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		uploadDir: uploadDir,
	}
}
