package handlers

import (
	"bytes"

	"billed/internal/newbill"
	"billed/internal/service"
	"billed/internal/view"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PageHandler serves the employee pages rendered on the server.
type PageHandler struct {
	billService *service.BillService
	logger      *zap.Logger
}

func NewPageHandler(billService *service.BillService, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		billService: billService,
		logger:      logger,
	}
}

func (h *PageHandler) NewBill(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := view.NewBill(&buf); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// Bills renders the listing of ?email=, or the error page when the store fails.
func (h *PageHandler) Bills(c *fiber.Ctx) error {
	var data view.BillsData

	bills, err := h.billService.ListBills(c.Context(), c.Query("email"), 0, 0)
	if err != nil {
		h.logger.Error("Failed to list bills for page", zap.Error(err))
		data.Error = "Erreur 500"
		c.Status(fiber.StatusInternalServerError)
	} else {
		data.Bills = make([]*newbill.Bill, len(bills))
		for i, b := range bills {
			data.Bills[i] = &newbill.Bill{
				ID:         b.ID,
				Email:      b.Email,
				Type:       b.Type,
				Name:       b.Name,
				Amount:     b.Amount,
				Date:       b.Date,
				VAT:        b.VAT,
				Pct:        b.Pct,
				Commentary: b.Commentary,
				FileURL:    b.FileURL,
				FileName:   b.FileName,
				Status:     newbill.BillStatus(b.Status),
			}
		}
	}

	var buf bytes.Buffer
	if err := view.Bills(&buf, data); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
