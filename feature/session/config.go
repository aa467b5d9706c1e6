package session

// Config holds configuration for session sharing.
type Config struct {
	// Enabled toggles the session feature.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// BatchSize is the number of recorded checks between automatic re-syncs
	// while hosting.
	BatchSize int `mapstructure:"batch_size" default:"10"`
	// TTLHours is the validity window of a shared session in hours.
	TTLHours int `mapstructure:"ttl_hours" default:"24"`
	// PublicURL is the externally reachable base URL used to build share
	// links and QR codes.
	PublicURL string `mapstructure:"public_url" default:"http://localhost:8080"`
}
