package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ventapos/internal/pos"
	"ventapos/internal/repos"

	"github.com/google/uuid"
)

// Submitter hands a finalized document to the fiscal submission collaborator.
type Submitter interface {
	Submit(ctx context.Context, doc pos.Document) error
}

// RegisterService owns one pos.Register per operator session and runs the
// checkout hand-off: assemble, submit, record, reset.
type RegisterService struct {
	mu        sync.Mutex
	registers map[string]*pos.Register

	Sales  *repos.SaleRepo
	Submit Submitter
	Drafts DraftStore
}

func NewRegisterService(sales *repos.SaleRepo, submit Submitter, drafts DraftStore) *RegisterService {
	return &RegisterService{
		registers: make(map[string]*pos.Register),
		Sales:     sales,
		Submit:    submit,
		Drafts:    drafts,
	}
}

// Register returns the register bound to the session, creating it on first
// use. Registers live for the lifetime of the session.
func (s *RegisterService) Register(sessionID string) *pos.Register {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.registers[sessionID]
	if !ok {
		r = pos.NewRegister()
		s.registers[sessionID] = r
	}
	return r
}

// Confirm finalizes the sale on the session's register. A submission failure
// leaves cart and form untouched so the operator can retry unchanged; only a
// successful submit records the sale and resets the register.
func (s *RegisterService) Confirm(ctx context.Context, sessionID string) (string, pos.Document, error) {
	r := s.Register(sessionID)

	doc, err := r.Checkout(time.Now())
	if err != nil {
		return "", pos.Document{}, err
	}

	if err := s.Submit.Submit(ctx, doc); err != nil {
		return "", pos.Document{}, fmt.Errorf("submit document: %w", err)
	}

	saleID := uuid.NewString()
	if err := s.Sales.Record(saleID, sessionID, doc); err != nil {
		// Already submitted; the local trail is what failed.
		return "", pos.Document{}, fmt.Errorf("record sale %s: %w", saleID, err)
	}

	r.CompleteSale()
	return saleID, doc, nil
}

// SaveDraft snapshots the current register into the draft extension point.
func (s *RegisterService) SaveDraft(ctx context.Context, sessionID string) error {
	st := s.Register(sessionID).Snapshot()
	return s.Drafts.Save(ctx, sessionID, Draft{
		SaleType: st.SaleType,
		Items:    st.Items,
		Customer: st.Customer,
	})
}
