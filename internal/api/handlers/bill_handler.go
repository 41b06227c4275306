package handlers

import (
	"errors"

	"billed/internal/dto"
	"billed/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BillHandler struct {
	billService *service.BillService
	logger      *zap.Logger
}

func NewBillHandler(billService *service.BillService, logger *zap.Logger) *BillHandler {
	return &BillHandler{
		billService: billService,
		logger:      logger,
	}
}

// UploadReceipt godoc
// @Summary Upload a receipt
// @Description Upload the receipt image of a bill (jpg, jpeg or png)
// @Tags bills
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Receipt image"
// @Param email formData string true "Employee email"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/bills/receipts [post]
func (h *BillHandler) UploadReceipt(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	email := c.FormValue("email")

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	receipt, err := h.billService.UploadReceipt(c.Context(), email, src, file.Filename)
	if err != nil {
		if errors.Is(err, service.ErrInvalidReceipt) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to upload receipt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload receipt",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(receipt)
}

// CreateBill godoc
// @Summary Create a bill
// @Description Create a new expense bill, pending by default
// @Tags bills
// @Accept json
// @Produce json
// @Param request body dto.CreateBillRequest true "Bill"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/bills [post]
func (h *BillHandler) CreateBill(c *fiber.Ctx) error {
	var req dto.CreateBillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	bill, err := h.billService.CreateBill(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBill) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to create bill", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create bill",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(bill)
}

// ListBills godoc
// @Summary List bills
// @Description List the bills of an employee, or all bills when no email is given
// @Tags bills
// @Produce json
// @Param email query string false "Employee email"
// @Param limit query int false "Limit" default(0)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.BillResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/bills [get]
func (h *BillHandler) ListBills(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	offset := c.QueryInt("offset", 0)

	bills, err := h.billService.ListBills(c.Context(), c.Query("email"), limit, offset)
	if err != nil {
		h.logger.Error("Failed to list bills", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list bills",
		})
	}

	return c.JSON(bills)
}

// GetBill godoc
// @Summary Get a bill
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/bills/{id} [get]
func (h *BillHandler) GetBill(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid bill ID",
		})
	}

	bill, err := h.billService.GetBill(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBillNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Bill not found",
			})
		}
		h.logger.Error("Failed to get bill", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get bill",
		})
	}

	return c.JSON(bill)
}
