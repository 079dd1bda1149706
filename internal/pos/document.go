package pos

import (
	"strconv"
	"time"

	"ventapos/internal/domain"
)

// Issuer block constants. Single-issuer deployment; these go verbatim into
// every document header.
const (
	issuerRUT      = "76.543.210-3"
	issuerName     = "Comercial VentaPOS SpA"
	issuerActivity = "Venta al por menor de abarrotes"
	issuerAddress  = "Av. Providencia 1234"
	issuerCommune  = "Providencia"
	issuerCity     = "Santiago"
)

// Boletas never carry real recipient tax data; they get this generic block.
// TODO(product): confirm whether 66.666.666-6 stays once anonymous-buyer
// handling is defined.
const (
	genericRUT      = "66.666.666-6"
	genericActivity = "Consumidor final"
)

const taxRateLabel = "19"

// SaleForm collects everything the operator chooses on the payment screen.
type SaleForm struct {
	SaleType domain.SaleType       `json:"saleType"`
	Delivery domain.DeliveryMethod `json:"delivery"`
	Payment  domain.PaymentMethod  `json:"payment"`
	Address  domain.Address        `json:"address"`
	Billing  domain.BillingInfo    `json:"billing"`
	Customer *domain.Customer      `json:"customer,omitempty"`
}

// Valid is the gate in front of document assembly: invoices need a selected
// customer and the full billing block; shipping needs the full address. Each
// block is all-or-nothing.
func (f SaleForm) Valid() bool {
	if !f.SaleType.Valid() || !f.Delivery.Valid() || !f.Payment.Valid() {
		return false
	}
	if f.SaleType == domain.SaleInvoice {
		if f.Customer == nil || !f.Billing.Complete() {
			return false
		}
	}
	if f.Delivery == domain.DeliveryShipping && !f.Address.Complete() {
		return false
	}
	return true
}

type Recipient struct {
	RUT      string `json:"rut"`
	Name     string `json:"name"`
	Activity string `json:"activity"`
	Address  string `json:"address"`
	Commune  string `json:"commune"`
	City     string `json:"city"`
	Email    string `json:"email"`
}

type Issuer struct {
	RUT      string `json:"rut"`
	Name     string `json:"name"`
	Activity string `json:"activity"`
	Address  string `json:"address"`
	Commune  string `json:"commune"`
	City     string `json:"city"`
}

type DocumentHeader struct {
	DocType   int                   `json:"docType"`
	IssueDate string                `json:"issueDate"`
	Payment   domain.PaymentMethod  `json:"paymentMethod"`
	Delivery  domain.DeliveryMethod `json:"deliveryMethod"`
	Issuer    Issuer                `json:"issuer"`
	Recipient Recipient             `json:"recipient"`
	Shipping  *domain.Address       `json:"shipping,omitempty"`
}

type DocumentLine struct {
	Line      int    `json:"line"`
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

type DocumentTotals struct {
	Net        string `json:"net"`
	TaxRate    string `json:"taxRate"`
	Tax        string `json:"tax"`
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal"`
}

// Document is the assembled fiscal payload handed to the submission
// collaborator. Built fresh per checkout attempt, never retained.
type Document struct {
	Header DocumentHeader `json:"header"`
	Items  []DocumentLine `json:"items"`
	Totals DocumentTotals `json:"totals"`
}

// BuildDocument turns cart + totals + form into the payload. Pure data
// transformation: the validation gate has already passed, so this cannot
// fail partway.
func BuildDocument(cart *Cart, totals Totals, form SaleForm, issued time.Time) Document {
	items := cart.Items()
	lines := make([]DocumentLine, 0, len(items))
	for i, it := range items {
		lines = append(lines, DocumentLine{
			Line:      i + 1,
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Quantity:  strconv.Itoa(it.Quantity),
			UnitPrice: it.Product.Price.Amount.String(),
			LineTotal: it.Product.Price.Amount.Mul(decimalFromInt(it.Quantity)).String(),
		})
	}

	doc := Document{
		Header: DocumentHeader{
			DocType:   form.SaleType.DocCode(),
			IssueDate: issued.Format("2006-01-02"),
			Payment:   form.Payment,
			Delivery:  form.Delivery,
			Issuer: Issuer{
				RUT:      issuerRUT,
				Name:     issuerName,
				Activity: issuerActivity,
				Address:  issuerAddress,
				Commune:  issuerCommune,
				City:     issuerCity,
			},
			Recipient: buildRecipient(form),
		},
		Items: lines,
		Totals: DocumentTotals{
			Net:        totals.Net.String(),
			TaxRate:    taxRateLabel,
			Tax:        totals.Tax.String(),
			Total:      totals.Total.String(),
			GrandTotal: totals.Total.String(),
		},
	}
	if form.Delivery == domain.DeliveryShipping {
		addr := form.Address
		doc.Header.Shipping = &addr
	}
	return doc
}

func buildRecipient(form SaleForm) Recipient {
	if form.SaleType == domain.SaleInvoice {
		b := form.Billing
		return Recipient{
			RUT:      b.RUT,
			Name:     b.Business,
			Activity: b.Activity,
			Address:  b.Address,
			Commune:  b.Commune,
			City:     b.City,
			Email:    b.Email,
		}
	}
	name := ""
	if form.Customer != nil {
		name = form.Customer.Name
	}
	return Recipient{RUT: genericRUT, Name: name, Activity: genericActivity}
}
