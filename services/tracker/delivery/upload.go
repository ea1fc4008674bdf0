package delivery

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
)

const defaultImageMIME = "image/jpeg"

type uploadHandler struct{}

func NewUploadHandler(api fiber.Router) {
	handler := &uploadHandler{}

	api.Post("/upload", handler.UploadImage)
}

// UploadImage reads a multipart file fully into memory and hands back a
// self-describing data URI. Nothing is persisted; the caller is
// expected to store the string in a photo field.
func (uh *uploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to parse file",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}
	defer src.Close()

	contents, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = defaultImageMIME
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": encodeDataURI(mimeType, contents),
	})
}

func encodeDataURI(mimeType string, payload []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(payload))
}
