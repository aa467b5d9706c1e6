package session

import (
	"github.com/gofiber/fiber/v2"
)

// Feature wires the session service into the feature loader.
type Feature struct {
	service *Service
	enabled bool
}

// NewFeature creates the session feature.
func NewFeature(service *Service, enabled bool) *Feature {
	return &Feature{service: service, enabled: enabled}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "session"
}

// IsEnabled reports whether session sharing is configured on.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the session routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
