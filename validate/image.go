package validate

import (
	"errors"
	"strings"

	"restaurant_manager/constants"
	"restaurant_manager/storage"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// Image stores the optional "image" file of a multipart request and puts its URL in
// Locals("imageUrl"). JSON requests pass through untouched.
func Image(store storage.Storage, folder string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
			return c.Next()
		}
		form, err := c.MultipartForm()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_IMAGE, err)
		}
		files := form.File["image"]
		if len(files) == 0 {
			return c.Next()
		}
		file := files[0]

		url, err := store.SaveImage(c.UserContext(), file, folder)
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedType) || errors.Is(err, storage.ErrTooLarge) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_IMAGE, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPLOAD_FAILED, err)
		}

		c.Locals("imageUrl", url)
		return c.Next()
	}
}
