package pos

import (
	"github.com/shopspring/decimal"
)

// Sale totals treat the cart total as tax-inclusive at a fixed 19% rate.
var taxDivisor = decimal.RequireFromString("1.19")

type Totals struct {
	Total decimal.Decimal `json:"total"`
	Net   decimal.Decimal `json:"net"`
	Tax   decimal.Decimal `json:"tax"`
}

// ComputeTotals derives net/tax/total from the cart. Net is the division
// result rounded half-up to whole units; tax is the remainder, so
// Net + Tax == Total holds exactly. An empty cart yields all zeros.
func ComputeTotals(c *Cart) Totals {
	total := decimal.Zero
	for _, it := range c.Items() {
		if !it.Product.Price.Known {
			continue
		}
		total = total.Add(it.Product.Price.Amount.Mul(decimalFromInt(it.Quantity)))
	}
	net := total.DivRound(taxDivisor, 0)
	return Totals{Total: total, Net: net, Tax: total.Sub(net)}
}

func decimalFromInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }
