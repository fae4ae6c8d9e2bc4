package svr

import "github.com/gofiber/fiber/v2"

// Meta is the root router of the devops app.
type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) *Meta {
	return &Meta{Router: app.Group("/")}
}
