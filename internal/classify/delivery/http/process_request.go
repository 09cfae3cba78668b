package http

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// classifyReq carries the resolved image path and a cleanup for any staged
// upload. cleanup is always non-nil.
type classifyReq struct {
	path    string
	cleanup func()
}

type classifyPathReq struct {
	Path string `json:"path"`
}

// processClassifyReq resolves the request image: a multipart upload takes
// precedence, otherwise a JSON body may name a server-local file.
//
// Uploads are staged in a per-request directory so the original base name is
// preserved — the fallback classifier keys on it.
func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	noop := classifyReq{cleanup: func() {}}

	file, err := c.FormFile("image")
	if err == nil {
		stageDir := filepath.Join(h.uploadDir, uuid.NewString())
		if mkErr := os.MkdirAll(stageDir, 0o755); mkErr != nil {
			return noop, mkErr
		}

		dst := filepath.Join(stageDir, filepath.Base(file.Filename))
		if saveErr := c.SaveUploadedFile(file, dst); saveErr != nil {
			os.RemoveAll(stageDir)
			return noop, saveErr
		}

		return classifyReq{
			path:    dst,
			cleanup: func() { os.RemoveAll(stageDir) },
		}, nil
	}

	var req classifyPathReq
	if bindErr := c.ShouldBindJSON(&req); bindErr == nil && req.Path != "" {
		return classifyReq{path: req.Path, cleanup: func() {}}, nil
	}

	return noop, errNoImage
}
