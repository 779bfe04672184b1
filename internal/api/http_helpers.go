package api

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/services"
	"github.com/gofiber/fiber/v2"
)

const messageServerError = "Server error"

var errInvalidID = errors.New("invalid id")

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// internalError logs the cause and hides it from the client.
func internalError(c *fiber.Ctx, operation string, err error) error {
	log.Printf("%s %s: %s: %v", c.Method(), c.Path(), operation, err)
	return apiError(c, fiber.StatusInternalServerError, messageServerError)
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	return parseID(c.Params(name))
}

func parseID(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil || value == 0 {
		return 0, errInvalidID
	}
	return uint(value), nil
}

// parseOptionalDate accepts a date or an RFC 3339 timestamp; empty means unset.
func parseOptionalDate(raw string) (*time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, time.RFC3339Nano} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}
	return nil, errors.New("invalid date")
}

type uploadedFile struct {
	name        string
	contentType string
	data        []byte
}

func readUploadedFile(c *fiber.Ctx, field string) (uploadedFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return uploadedFile{}, services.ErrFileRequired
	}
	file, err := header.Open()
	if err != nil {
		return uploadedFile{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return uploadedFile{}, err
	}
	contentType := strings.TrimSpace(header.Header.Get(fiber.HeaderContentType))
	if contentType == "" || contentType == fiber.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}
	return uploadedFile{name: header.Filename, contentType: contentType, data: data}, nil
}

// uploadErrorStatus maps the validation errors shared by report and bill uploads.
func uploadErrorStatus(err error) (int, string, bool) {
	switch {
	case errors.Is(err, services.ErrFileRequired):
		return fiber.StatusBadRequest, "No file uploaded", true
	case errors.Is(err, services.ErrFileTypeUnsupported):
		return fiber.StatusBadRequest, "Only PDF or image files are supported", true
	default:
		return 0, "", false
	}
}
