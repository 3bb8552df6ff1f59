package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam lee el parámetro de ruta :id como int64 positivo.
func parseIDParam(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
