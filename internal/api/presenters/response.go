package presenters

import "github.com/gofiber/fiber/v2"

// SuccessResponse writes data with success:true merged in.
func SuccessResponse(c *fiber.Ctx, status int, data fiber.Map) error {
	payload := fiber.Map{"success": true}
	for key, value := range data {
		payload[key] = value
	}
	return c.Status(status).JSON(payload)
}

// ErrorResponse writes {error, details}. Pass a nil err to omit details; the
// diagnostic string is the only internal detail that ever leaves the boundary.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err == nil {
		return c.Status(status).JSON(fiber.Map{"error": message})
	}
	return c.Status(status).JSON(fiber.Map{
		"error":   message,
		"details": err.Error(),
	})
}
