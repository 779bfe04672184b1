package api

import (
	"errors"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) UploadReport(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	file, err := readUploadedFile(c, "file")
	if err != nil {
		if status, message, known := uploadErrorStatus(err); known {
			return apiError(c, status, message)
		}
		return internalError(c, "read report upload", err)
	}
	reportDate, err := parseOptionalDate(c.FormValue("reportDate"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid reportDate")
	}

	report, err := handler.reportService.Upload(c.UserContext(), *user, services.UploadInput{
		FileName:    file.name,
		ContentType: file.contentType,
		Data:        file.data,
		ReportType:  c.FormValue("reportType"),
		ReportDate:  reportDate,
	})
	if err != nil {
		if status, message, known := uploadErrorStatus(err); known {
			return apiError(c, status, message)
		}
		return internalError(c, "upload report", err)
	}
	return c.JSON(fiber.Map{"msg": "Uploaded ✅", "report": report})
}

func (handler *Handler) ListReports(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	reports, err := handler.reportService.List(user.ID)
	if err != nil {
		return internalError(c, "list reports", err)
	}
	return c.JSON(reports)
}

func (handler *Handler) GetReport(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	reportID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid report id")
	}

	report, err := handler.reportService.Get(user.ID, reportID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReportNotFound):
			return apiError(c, fiber.StatusNotFound, "Report not found")
		case errors.Is(err, services.ErrReportForbidden):
			return apiError(c, fiber.StatusForbidden, "Forbidden")
		default:
			return internalError(c, "get report", err)
		}
	}
	return c.JSON(report)
}
