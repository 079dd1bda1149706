package pos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ventapos/internal/domain"
)

func fullBilling() domain.BillingInfo {
	return domain.BillingInfo{
		RUT:      "12.345.678-5",
		Business: "Almacén El Sur Ltda.",
		Activity: "Venta de abarrotes",
		Email:    "contacto@elsur.cl",
		Address:  "Av. Matta 555",
		Commune:  "Santiago",
		City:     "Santiago",
	}
}

func TestFormValidation(t *testing.T) {
	base := SaleForm{
		SaleType: domain.SaleReceipt,
		Delivery: domain.DeliveryPickup,
		Payment:  domain.PayCash,
	}
	require.True(t, base.Valid())

	invoice := base
	invoice.SaleType = domain.SaleInvoice
	require.False(t, invoice.Valid(), "invoice needs customer and billing")

	invoice.Customer = &domain.Customer{ID: "c1", Name: "Almacén El Sur"}
	require.False(t, invoice.Valid(), "billing still missing")

	invoice.Billing = fullBilling()
	require.True(t, invoice.Valid())

	partial := invoice
	partial.Billing.Commune = ""
	require.False(t, partial.Valid(), "billing fields are all-or-nothing")
}

func TestBuildDocumentInvoice(t *testing.T) {
	var c Cart
	c.Add(sellable("arroz", 1190, 10))
	c.Add(sellable("aceite", 3490, 10))
	c.SetQuantity("aceite", 2)

	form := SaleForm{
		SaleType: domain.SaleInvoice,
		Delivery: domain.DeliveryPickup,
		Payment:  domain.PayCredit,
		Billing:  fullBilling(),
		Customer: &domain.Customer{ID: "c1", Name: "Almacén El Sur"},
	}
	require.True(t, form.Valid())

	issued := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	doc := BuildDocument(&c, ComputeTotals(&c), form, issued)

	require.Equal(t, 33, doc.Header.DocType)
	require.Equal(t, "2026-08-31", doc.Header.IssueDate, "calendar-date precision only")
	require.Equal(t, domain.PayCredit, doc.Header.Payment)
	require.Nil(t, doc.Header.Shipping)

	// recipient verbatim from billing
	require.Equal(t, "12.345.678-5", doc.Header.Recipient.RUT)
	require.Equal(t, "Almacén El Sur Ltda.", doc.Header.Recipient.Name)
	require.Equal(t, "contacto@elsur.cl", doc.Header.Recipient.Email)

	require.Len(t, doc.Items, 2)
	require.Equal(t, 1, doc.Items[0].Line)
	require.Equal(t, "1", doc.Items[0].Quantity)
	require.Equal(t, "1190", doc.Items[0].UnitPrice)
	require.Equal(t, "1190", doc.Items[0].LineTotal)
	require.Equal(t, 2, doc.Items[1].Line)
	require.Equal(t, "2", doc.Items[1].Quantity)
	require.Equal(t, "6980", doc.Items[1].LineTotal)

	// total 8170 -> net 6866, tax 1304
	require.Equal(t, "19", doc.Totals.TaxRate)
	require.Equal(t, "8170", doc.Totals.Total)
	require.Equal(t, doc.Totals.Total, doc.Totals.GrandTotal)
	require.Equal(t, "6866", doc.Totals.Net)
	require.Equal(t, "1304", doc.Totals.Tax)
}

func TestBuildDocumentReceiptUsesGenericRecipient(t *testing.T) {
	var c Cart
	c.Add(sellable("arroz", 1190, 10))

	form := SaleForm{
		SaleType: domain.SaleReceipt,
		Delivery: domain.DeliveryPickup,
		Payment:  domain.PayCash,
		Customer: &domain.Customer{ID: "c1", Name: "María Contreras"},
	}
	doc := BuildDocument(&c, ComputeTotals(&c), form, time.Now())

	require.Equal(t, 39, doc.Header.DocType)
	require.Equal(t, "66.666.666-6", doc.Header.Recipient.RUT, "boletas never carry real recipient tax data")
	require.Equal(t, "María Contreras", doc.Header.Recipient.Name)
	require.Equal(t, "Consumidor final", doc.Header.Recipient.Activity)
	require.Empty(t, doc.Header.Recipient.Email)
	require.Empty(t, doc.Header.Recipient.Address)
}

func TestBuildDocumentReceiptWalkIn(t *testing.T) {
	var c Cart
	c.Add(sellable("arroz", 1190, 10))

	form := SaleForm{SaleType: domain.SaleReceipt, Delivery: domain.DeliveryPickup, Payment: domain.PayCash}
	doc := BuildDocument(&c, ComputeTotals(&c), form, time.Now())
	require.Empty(t, doc.Header.Recipient.Name)
}

func TestBuildDocumentShippingBlock(t *testing.T) {
	var c Cart
	c.Add(sellable("arroz", 1190, 10))

	addr := domain.Address{
		Street: "Calle 1", City: "Santiago", Region: "RM",
		PostalCode: "8320000", DeliveryDate: "2026-09-02",
	}
	form := SaleForm{
		SaleType: domain.SaleReceipt,
		Delivery: domain.DeliveryShipping,
		Payment:  domain.PayDebit,
		Address:  addr,
	}
	require.True(t, form.Valid())

	doc := BuildDocument(&c, ComputeTotals(&c), form, time.Now())
	require.NotNil(t, doc.Header.Shipping)
	require.Equal(t, addr, *doc.Header.Shipping)
}
