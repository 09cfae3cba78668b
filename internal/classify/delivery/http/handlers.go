package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"fish-classification-website/internal/classify"
	"fish-classification-website/pkg/response"
)

// Classify godoc
// @Summary     Classify a fish image
// @Description Accepts a multipart upload (field "image") or a JSON body naming a server-local path. Uses the model when available, else the deterministic filename-derived fallback.
// @Tags        Classify
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file false "Image file"
// @Success     200 {object} map[string]interface{} "success, label, confidence, method"
// @Failure     400 {object} map[string]interface{} "missing or unreadable image"
// @Failure     500 {object} map[string]interface{} "Internal Server Error"
// @Router      /api/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		// Only a missing image is the client's fault; staging failures
		// (upload dir unwritable, copy error) are server-side.
		if errors.Is(err, errNoImage) {
			response.Error(c, err)
			return
		}
		h.l.Errorf(ctx, "processClassifyReq: %v", err)
		response.InternalError(c, err)
		return
	}
	defer req.cleanup()

	output, err := h.uc.Classify(ctx, classify.ClassifyInput{Path: req.path})
	if err != nil {
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		if errors.Is(err, classify.ErrImageUnreadable) {
			response.Error(c, err)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{
		"label":      output.Label,
		"confidence": output.Confidence,
		"method":     string(output.Method),
	})
}
