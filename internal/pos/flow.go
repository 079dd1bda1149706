package pos

// Screen names the two register views.
type Screen string

const (
	ScreenCart    Screen = "cart"
	ScreenPayment Screen = "payment"
)

// Flow is the screen state machine: which view is active plus the orthogonal
// cancel-confirmation overlay. It has no terminal state; a completed sale
// loops back to the cart view.
type Flow struct {
	screen        Screen
	confirmCancel bool
}

func NewFlow() Flow { return Flow{screen: ScreenCart} }

func (f *Flow) Screen() Screen {
	if f.screen == "" {
		return ScreenCart
	}
	return f.screen
}

func (f *Flow) ConfirmCancelOpen() bool { return f.confirmCancel }

// ToPayment moves cart → payment. Refused when the cart is empty or the
// payment view is already active; the caller decides whether to log.
func (f *Flow) ToPayment(cartEmpty bool) bool {
	if cartEmpty || f.Screen() == ScreenPayment {
		return false
	}
	f.screen = ScreenPayment
	return true
}

type CancelAction int

const (
	// CancelClearNow: cart view, nothing staged yet, clear immediately.
	CancelClearNow CancelAction = iota
	// CancelNeedsConfirm: payment view, raise the confirmation overlay and
	// touch nothing until it resolves.
	CancelNeedsConfirm
)

func (f *Flow) Cancel() CancelAction {
	if f.Screen() == ScreenPayment {
		f.confirmCancel = true
		return CancelNeedsConfirm
	}
	return CancelClearNow
}

// ResolveCancel closes the overlay and returns to the cart view. Whether the
// cart survives is the caller's branch; both answers land on ScreenCart.
func (f *Flow) ResolveCancel() {
	f.confirmCancel = false
	f.screen = ScreenCart
}

// SaleCompleted resets the machine after a confirmed sale.
func (f *Flow) SaleCompleted() {
	f.screen = ScreenCart
	f.confirmCancel = false
}
