package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ventapos/internal/domain"
	applog "ventapos/internal/log"
	"ventapos/internal/pos"
	"ventapos/internal/services"
	"ventapos/internal/validate"
)

type RegisterHandler struct {
	Registers *services.RegisterService
	Catalog   *services.CatalogService
}

func (h *RegisterHandler) register(c *fiber.Ctx) *pos.Register {
	token, _ := c.Locals("token").(string)
	return h.Registers.Register(token)
}

func (h *RegisterHandler) state(c *fiber.Ctx) error {
	return c.JSON(h.register(c).Snapshot())
}

// State returns the snapshot the register screen renders from.
func (h *RegisterHandler) State(c *fiber.Ctx) error { return h.state(c) }

type itemRequest struct {
	ProductID string `json:"productId"`
}

func (h *RegisterHandler) lookupProduct(c *fiber.Ctx) (domain.Product, bool) {
	var req itemRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.Product{}, false
	}
	id, ok := validate.ID(req.ProductID)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return domain.Product{}, false
	}
	p, err := h.Catalog.Product(id)
	if err != nil {
		return domain.Product{}, false
	}
	return p, true
}

// AddItem adds one unit. Rejections (no price, no stock info, stock ceiling)
// surface as notifications in the returned snapshot, not as HTTP errors.
func (h *RegisterHandler) AddItem(c *fiber.Ctx) error {
	p, ok := h.lookupProduct(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown product"})
	}
	h.register(c).AddToCart(p)
	return h.state(c)
}

func (h *RegisterHandler) DecreaseItem(c *fiber.Ctx) error {
	p, ok := h.lookupProduct(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown product"})
	}
	h.register(c).DecreaseFromCart(p)
	return h.state(c)
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *RegisterHandler) SetQuantity(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	var req quantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	h.register(c).SetQuantity(id, req.Quantity)
	return h.state(c)
}

func (h *RegisterHandler) RemoveItem(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	h.register(c).RemoveItem(id)
	return h.state(c)
}

type customerRequest struct {
	CustomerID string `json:"customerId"`
}

// SelectCustomer attaches a customer to the sale; an empty id means walk-in.
func (h *RegisterHandler) SelectCustomer(c *fiber.Ctx) error {
	var req customerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	if req.CustomerID == "" {
		h.register(c).SelectCustomer(nil)
		return h.state(c)
	}
	id, ok := validate.ID(req.CustomerID)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "customerId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid customer id"})
	}
	cust, err := h.Catalog.Customer(id)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown customer"})
	}
	h.register(c).SelectCustomer(&cust)
	return h.state(c)
}

type saleTypeRequest struct {
	SaleType domain.SaleType `json:"saleType"`
}

func (h *RegisterHandler) SetSaleType(c *fiber.Ctx) error {
	var req saleTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	if !h.register(c).SetSaleType(req.SaleType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "saleType must be boleta or factura"})
	}
	return h.state(c)
}

type formRequest struct {
	Delivery domain.DeliveryMethod `json:"delivery"`
	Payment  domain.PaymentMethod  `json:"payment"`
	Address  domain.Address        `json:"address"`
	Billing  domain.BillingInfo    `json:"billing"`
}

// UpdateForm stores the payment-screen choices. Field-format checks happen
// here; the all-or-nothing completeness gate stays in the register and is
// reported through the snapshot's formValid flag.
func (h *RegisterHandler) UpdateForm(c *fiber.Ctx) error {
	var req formRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	if req.Billing.RUT != "" {
		if _, ok := validate.RUT(req.Billing.RUT); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "billing.rut"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid RUT"})
		}
	}
	if req.Billing.Email != "" {
		if _, ok := validate.Email(req.Billing.Email); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "billing.email"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid email"})
		}
	}
	if req.Address.DeliveryDate != "" {
		if _, ok := validate.Date(req.Address.DeliveryDate); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "address.deliveryDate"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid delivery date"})
		}
	}
	if !h.register(c).UpdateForm(req.Delivery, req.Payment, req.Address, req.Billing) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid delivery or payment method"})
	}
	return h.state(c)
}

// Pay moves to the payment screen. An empty cart refuses the transition
// silently; the diagnostic goes to the log only.
func (h *RegisterHandler) Pay(c *fiber.Ctx) error {
	if !h.register(c).ProceedToPay() {
		applog.Info(c, "register.pay.refused", map[string]any{"reason": "empty cart or already paying"})
	}
	return h.state(c)
}

func (h *RegisterHandler) Cancel(c *fiber.Ctx) error {
	h.register(c).Cancel()
	return h.state(c)
}

type resolveCancelRequest struct {
	Clear bool `json:"clear"`
}

func (h *RegisterHandler) ResolveCancel(c *fiber.Ctx) error {
	var req resolveCancelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	h.register(c).ResolveCancel(req.Clear)
	return h.state(c)
}

// Confirm finalizes the sale: assemble, submit, record, reset.
func (h *RegisterHandler) Confirm(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)
	saleID, doc, err := h.Registers.Confirm(c.Context(), token)
	switch {
	case errors.Is(err, pos.ErrFormIncomplete),
		errors.Is(err, pos.ErrCartEmpty),
		errors.Is(err, pos.ErrNotPaying):
		applog.Security(c, "register.confirm.rejected", map[string]any{"reason": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		// Submission or recording failed; the register kept its state so the
		// operator can retry unchanged.
		applog.Error(c, "register.confirm.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not submit sale, try again"})
	}
	applog.Audit(c, "register.confirm", map[string]any{
		"sale_id":  saleID,
		"doc_type": doc.Header.DocType,
		"total":    doc.Totals.Total,
	})
	return c.JSON(fiber.Map{"saleId": saleID, "document": doc})
}

func (h *RegisterHandler) SaveDraft(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)
	if err := h.Registers.SaveDraft(c.Context(), token); err != nil {
		if errors.Is(err, services.ErrDraftsUnsupported) {
			return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"error": err.Error()})
		}
		applog.Error(c, "register.draft.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save draft"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
