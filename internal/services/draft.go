package services

import (
	"context"
	"errors"

	"ventapos/internal/domain"
	"ventapos/internal/pos"
)

var ErrDraftsUnsupported = errors.New("draft saving not supported yet")

// Draft is the snapshot a future draft store would persist. Draft
// persistence is deliberately out of scope today; DraftStore names the
// extension point so the register API can already expose the button.
type Draft struct {
	SaleType domain.SaleType  `json:"saleType"`
	Items    []pos.CartItem   `json:"items"`
	Customer *domain.Customer `json:"customer,omitempty"`
}

type DraftStore interface {
	Save(ctx context.Context, sessionID string, d Draft) error
}

type UnsupportedDraftStore struct{}

func (UnsupportedDraftStore) Save(context.Context, string, Draft) error {
	return ErrDraftsUnsupported
}
