package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the HTTP header carrying the ray id.
const HeaderName = "X-Ray-ID"

// LocalsKey is the Fiber locals key under which the ray id is stored.
const LocalsKey = "ray_id"

// New returns a middleware that ensures every request carries a ray id.
// An incoming id is preserved so ids can be traced across services;
// otherwise a fresh UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
