package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the HTTP header carrying the request's RayID.
const Header = "X-Ray-ID"

// LocalsKey is the fiber locals key the RayID is stored under.
const LocalsKey = "ray_id"

// New returns a middleware that tags every request with a RayID.
// An incoming header value is reused so IDs survive proxy hops; otherwise a
// fresh UUID is generated. The ID is stored in locals for logging and echoed
// back in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
