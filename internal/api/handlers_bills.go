package api

import (
	"errors"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) UploadBill(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	file, err := readUploadedFile(c, "file")
	if err != nil {
		if status, message, known := uploadErrorStatus(err); known {
			return apiError(c, status, message)
		}
		return internalError(c, "read bill upload", err)
	}

	bill, err := handler.billService.Upload(c.UserContext(), *user, services.BillUploadInput{
		FileName:    file.name,
		ContentType: file.contentType,
		Data:        file.data,
		BillType:    c.FormValue("billType"),
	})
	if err != nil {
		if status, message, known := uploadErrorStatus(err); known {
			return apiError(c, status, message)
		}
		return internalError(c, "upload bill", err)
	}
	return c.JSON(fiber.Map{"msg": "Bill Analyzed ✅", "bill": bill})
}

func (handler *Handler) ListBills(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	bills, err := handler.billService.List(user.ID)
	if err != nil {
		return internalError(c, "list bills", err)
	}
	return c.JSON(bills)
}

func (handler *Handler) GetBill(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	billID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid bill id")
	}

	bill, err := handler.billService.Get(user.ID, billID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBillNotFound):
			return apiError(c, fiber.StatusNotFound, "Bill not found")
		case errors.Is(err, services.ErrBillForbidden):
			return apiError(c, fiber.StatusForbidden, "Forbidden")
		default:
			return internalError(c, "get bill", err)
		}
	}
	return c.JSON(bill)
}

func (handler *Handler) AddBillSuggestion(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := customBillInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	bill, err := handler.billService.AddCustomBill(c.UserContext(), *user, services.CustomBillInput{
		Category:       input.BillCategory,
		TotalUnits:     float64(input.TotalUnits),
		CurrentAmount:  float64(input.CurrentAmount),
		PreviousAmount: float64(input.PreviousAmount),
		Notes:          input.Notes,
	})
	if err != nil {
		if errors.Is(err, services.ErrBillAmountInvalid) {
			return apiError(c, fiber.StatusBadRequest, "units and amounts must be non-negative numbers")
		}
		return internalError(c, "add bill suggestion", err)
	}
	return c.JSON(fiber.Map{
		"message": "Bill optimization suggestion generated ✅",
		"bill":    bill,
	})
}

func (handler *Handler) ListBillSuggestions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	bills, err := handler.billService.ListCustomBills(user.ID)
	if err != nil {
		return internalError(c, "list bill suggestions", err)
	}
	return c.JSON(bills)
}
