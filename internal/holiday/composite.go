package holiday

import (
	"go.uber.org/zap"
)

// CompositeProvider implements Provider with fallback strategy
// Primary: APIProvider (network)
// Fallback: RegionProvider (computed locally)
type CompositeProvider struct {
	primary  Provider
	fallback Provider
	logger   *zap.Logger
}

// NewCompositeProvider creates a new CompositeProvider
func NewCompositeProvider(primary, fallback Provider, logger *zap.Logger) *CompositeProvider {
	return &CompositeProvider{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Year returns the holiday set for the given calendar year.
func (cp *CompositeProvider) Year(year int) (Set, error) {
	set, err := cp.primary.Year(year)
	if err == nil {
		return set, nil
	}

	cp.logger.Warn("Primary holiday provider failed, falling back to computed holidays",
		zap.Int("year", year),
		zap.Error(err))

	return cp.fallback.Year(year)
}
