package pos

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"ventapos/internal/domain"
)

var (
	ErrNotPaying      = errors.New("register is not on the payment screen")
	ErrCartEmpty      = errors.New("cart is empty")
	ErrFormIncomplete = errors.New("sale form incomplete")
)

// Register is one terminal's transaction state: cart, sale form, screen flow
// and the operator notification feed. Events are serialized by the mutex and
// processed to completion; the only background activity is feed expiry, which
// the feed guards itself.
type Register struct {
	mu   sync.Mutex
	cart Cart
	flow Flow
	form SaleForm
	feed *Feed
}

func NewRegister() *Register {
	return &Register{
		flow: NewFlow(),
		form: SaleForm{
			SaleType: domain.SaleReceipt,
			Delivery: domain.DeliveryPickup,
			Payment:  domain.PayCash,
		},
		feed: NewFeed(),
	}
}

// AddToCart adds one unit and surfaces the outcome to the operator. Exactly
// one notification per call; on rejection the cart is untouched.
func (r *Register) AddToCart(p domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.cart.Add(p) {
	case AddNoPrice:
		r.feed.Push(fmt.Sprintf("No se puede agregar %s: sin información de precio", p.Name), SeverityError)
	case AddNoStockInfo:
		r.feed.Push(fmt.Sprintf("No se puede agregar %s: sin información de stock", p.Name), SeverityError)
	case AddStockLimit:
		r.feed.Push(fmt.Sprintf("No queda más stock de %s", p.Name), SeverityError)
	case AddOK:
		r.feed.Push(fmt.Sprintf("%s agregado al carrito", p.Name), SeveritySuccess)
	}
}

func (r *Register) DecreaseFromCart(p domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.cart.Decrease(p) {
	case DecreaseRemoved:
		r.feed.Push(fmt.Sprintf("%s eliminado del carrito", p.Name), SeveritySuccess)
	case DecreaseReduced:
		r.feed.Push(fmt.Sprintf("Cantidad de %s reducida", p.Name), SeveritySuccess)
	case DecreaseAbsent:
		// no-op, no notification
	}
}

// SetQuantity is the direct numeric edit; it clamps silently.
func (r *Register) SetQuantity(productID string, qty int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cart.SetQuantity(productID, qty)
}

func (r *Register) RemoveItem(productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cart.Remove(productID)
}

func (r *Register) SelectCustomer(c *domain.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.form.Customer = c
}

func (r *Register) SetSaleType(t domain.SaleType) bool {
	if !t.Valid() {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.form.SaleType = t
	return true
}

// UpdateForm replaces delivery/payment/address/billing choices, keeping the
// current sale type and customer.
func (r *Register) UpdateForm(delivery domain.DeliveryMethod, payment domain.PaymentMethod, addr domain.Address, billing domain.BillingInfo) bool {
	if !delivery.Valid() || !payment.Valid() {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.form.Delivery = delivery
	r.form.Payment = payment
	r.form.Address = addr
	r.form.Billing = billing
	return true
}

// ProceedToPay moves to the payment screen. An empty cart refuses the
// transition without a notification; callers log the diagnostic.
func (r *Register) ProceedToPay() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flow.ToPayment(r.cart.Empty())
}

// Cancel applies the screen-dependent cancel rule: on the payment screen it
// only raises the confirmation overlay; on the cart screen it clears at once.
func (r *Register) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.flow.Cancel() == CancelClearNow {
		r.cart.Clear()
	}
}

// ResolveCancel closes the confirmation overlay. clear=true empties the cart
// and drops the selected customer; clear=false keeps both. Either way the
// register returns to the cart screen.
func (r *Register) ResolveCancel(clear bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.flow.ConfirmCancelOpen() {
		return
	}
	if clear {
		r.cart.Clear()
		r.form.Customer = nil
	}
	r.flow.ResolveCancel()
}

// Checkout runs the validation gate and assembles the fiscal document. The
// register state is left intact: a failed submission downstream must allow an
// unchanged retry.
func (r *Register) Checkout(issued time.Time) (Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.flow.Screen() != ScreenPayment {
		return Document{}, ErrNotPaying
	}
	if r.cart.Empty() {
		return Document{}, ErrCartEmpty
	}
	if !r.form.Valid() {
		return Document{}, ErrFormIncomplete
	}
	totals := ComputeTotals(&r.cart)
	return BuildDocument(&r.cart, totals, r.form, issued), nil
}

// CompleteSale resets cart, customer and screen after a confirmed sale.
func (r *Register) CompleteSale() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cart.Clear()
	r.form.Customer = nil
	r.flow.SaleCompleted()
}

// State is the snapshot the register screen renders from.
type State struct {
	Screen            Screen                `json:"screen"`
	ConfirmCancelOpen bool                  `json:"confirmCancelOpen"`
	Items             []CartItem            `json:"items"`
	Totals            Totals                `json:"totals"`
	SaleType          domain.SaleType       `json:"saleType"`
	Delivery          domain.DeliveryMethod `json:"delivery"`
	Payment           domain.PaymentMethod  `json:"payment"`
	Customer          *domain.Customer      `json:"customer,omitempty"`
	FormValid         bool                  `json:"formValid"`
	Notifications     []Notification        `json:"notifications"`
}

func (r *Register) Snapshot() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return State{
		Screen:            r.flow.Screen(),
		ConfirmCancelOpen: r.flow.ConfirmCancelOpen(),
		Items:             r.cart.Items(),
		Totals:            ComputeTotals(&r.cart),
		SaleType:          r.form.SaleType,
		Delivery:          r.form.Delivery,
		Payment:           r.form.Payment,
		Customer:          r.form.Customer,
		FormValid:         r.form.Valid(),
		Notifications:     r.feed.List(),
	}
}

// Feed exposes the notification feed, mainly for tests and rendering.
func (r *Register) Feed() *Feed { return r.feed }
