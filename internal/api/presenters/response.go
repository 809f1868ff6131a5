package presenters

import "github.com/gofiber/fiber/v2"

// SuccessResponse writes the standard {success: true, ...} envelope.
// When data is a fiber.Map its keys are merged into the envelope, so
// handlers control the payload key ("food", "product", ...).
func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}

	switch payload := data.(type) {
	case fiber.Map:
		for k, v := range payload {
			body[k] = v
		}
	case nil:
	default:
		body["data"] = payload
	}

	return c.Status(status).JSON(body)
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}

	return c.Status(status).JSON(body)
}
