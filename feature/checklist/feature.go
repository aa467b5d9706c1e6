package checklist

import (
	"github.com/gofiber/fiber/v2"
)

// Feature wires the checklist service into the feature loader.
type Feature struct {
	service *Service
}

// NewFeature creates the checklist feature.
func NewFeature(service *Service) *Feature {
	return &Feature{service: service}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "checklist"
}

// IsEnabled reports whether the feature is active. The checklist is the core
// of the application and is always enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the checklist routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
