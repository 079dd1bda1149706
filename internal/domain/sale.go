package domain

// SaleType selects the fiscal document to emit. The code values are the DTE
// document-type codes used by the tax authority.
type SaleType string

const (
	SaleReceipt SaleType = "boleta"
	SaleInvoice SaleType = "factura"
)

func (t SaleType) Valid() bool { return t == SaleReceipt || t == SaleInvoice }

// DocCode returns the fiscal document-type code: 33 for facturas, 39 for
// boletas. The mapping is fixed, not configurable.
func (t SaleType) DocCode() int {
	if t == SaleInvoice {
		return 33
	}
	return 39
}

type DeliveryMethod string

const (
	DeliveryPickup   DeliveryMethod = "pickup"
	DeliveryShipping DeliveryMethod = "shipping"
)

func (m DeliveryMethod) Valid() bool { return m == DeliveryPickup || m == DeliveryShipping }

type PaymentMethod string

const (
	PayCash   PaymentMethod = "cash"
	PayDebit  PaymentMethod = "debit"
	PayCredit PaymentMethod = "credit"
)

func (m PaymentMethod) Valid() bool {
	return m == PayCash || m == PayDebit || m == PayCredit
}

// Address is the shipping destination. All five fields are mandatory
// together: a partially filled address invalidates the whole form.
type Address struct {
	Street       string `json:"street"`
	City         string `json:"city"`
	Region       string `json:"region"`
	PostalCode   string `json:"postalCode"`
	DeliveryDate string `json:"deliveryDate"`
}

func (a Address) Complete() bool {
	return a.Street != "" && a.City != "" && a.Region != "" &&
		a.PostalCode != "" && a.DeliveryDate != ""
}

// BillingInfo is required for invoice sales only. All seven fields are
// mandatory together.
type BillingInfo struct {
	RUT      string `json:"rut"`
	Business string `json:"business"`
	Activity string `json:"activity"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Commune  string `json:"commune"`
	City     string `json:"city"`
}

func (b BillingInfo) Complete() bool {
	return b.RUT != "" && b.Business != "" && b.Activity != "" &&
		b.Email != "" && b.Address != "" && b.Commune != "" && b.City != ""
}
