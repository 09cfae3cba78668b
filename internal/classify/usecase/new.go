package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"fish-classification-website/internal/classify"
	"fish-classification-website/pkg/log"
	"fish-classification-website/pkg/vision"
)

const (
	cacheSize = 256
	cacheTTL  = 10 * time.Minute
)

// implUseCase is the private implementation of classify.UseCase.
type implUseCase struct {
	vision vision.IVision // nil when no inference endpoint is configured
	l      log.Logger

	// Results are deterministic per file content + name, so caching is safe.
	cache *expirable.LRU[string, classify.ClassifyOutput]
}

var _ classify.UseCase = (*implUseCase)(nil)

// New creates a new classify UseCase implementation. vis may be nil; every
// request then takes the deterministic fallback path.
func New(vis vision.IVision, l log.Logger) *implUseCase {
	return &implUseCase{
		vision: vis,
		l:      l,
		cache:  expirable.NewLRU[string, classify.ClassifyOutput](cacheSize, nil, cacheTTL),
	}
}
