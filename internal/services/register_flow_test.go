package services_test

import (
	"context"
	"errors"
	"testing"

	"ventapos/internal/pos"
	"ventapos/internal/repos"
	"ventapos/internal/services"
)

type captureSubmitter struct {
	docs []pos.Document
	err  error
}

func (s *captureSubmitter) Submit(_ context.Context, doc pos.Document) error {
	if s.err != nil {
		return s.err
	}
	s.docs = append(s.docs, doc)
	return nil
}

func TestConfirmFlow_AddPayConfirm(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	prodRepo := repos.NewProductRepo(db)
	saleRepo := repos.NewSaleRepo(db)

	sub := &captureSubmitter{}
	svc := services.NewRegisterService(saleRepo, sub, services.UnsupportedDraftStore{})

	const sid = "test-session"
	r := svc.Register(sid)

	p, err := prodRepo.Get("arroz-1kg")
	if err != nil {
		t.Fatalf("seeded product missing: %v", err)
	}
	r.AddToCart(p)
	if !r.ProceedToPay() {
		t.Fatal("pay transition refused with non-empty cart")
	}

	saleID, doc, err := svc.Confirm(context.Background(), sid)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if saleID == "" {
		t.Fatal("no sale id")
	}
	if doc.Header.DocType != 39 {
		t.Fatalf("default sale is a boleta, want doc type 39, got %d", doc.Header.DocType)
	}
	if doc.Totals.Total != "1190" || doc.Totals.Net != "1000" || doc.Totals.Tax != "190" {
		t.Fatalf("bad totals: %+v", doc.Totals)
	}
	if len(sub.docs) != 1 {
		t.Fatalf("want 1 submitted document, got %d", len(sub.docs))
	}

	// recorded locally
	row, err := saleRepo.Get(saleID)
	if err != nil {
		t.Fatalf("sale not recorded: %v", err)
	}
	if row.DocType != 39 || row.Total != "1190" {
		t.Fatalf("bad sale row: %+v", row)
	}

	// register reset for the next sale
	st := r.Snapshot()
	if st.Screen != pos.ScreenCart || len(st.Items) != 0 {
		t.Fatalf("register not reset: %+v", st)
	}
}

func TestConfirmSubmitFailureKeepsState(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	prodRepo := repos.NewProductRepo(db)
	saleRepo := repos.NewSaleRepo(db)

	sub := &captureSubmitter{err: errors.New("broker down")}
	svc := services.NewRegisterService(saleRepo, sub, services.UnsupportedDraftStore{})

	const sid = "test-session"
	r := svc.Register(sid)
	p, _ := prodRepo.Get("arroz-1kg")
	r.AddToCart(p)
	r.ProceedToPay()

	if _, _, err := svc.Confirm(context.Background(), sid); err == nil {
		t.Fatal("expected submit failure")
	}

	// cart and screen intact so the operator can retry unchanged
	st := r.Snapshot()
	if st.Screen != pos.ScreenPayment || len(st.Items) != 1 {
		t.Fatalf("state lost on failed submit: %+v", st)
	}

	sub.err = nil
	if _, _, err := svc.Confirm(context.Background(), sid); err != nil {
		t.Fatalf("retry should succeed: %v", err)
	}
	if len(r.Snapshot().Items) != 0 {
		t.Fatal("register not reset after successful retry")
	}
}

func TestConfirmRejectsIncompleteForm(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	prodRepo := repos.NewProductRepo(db)
	saleRepo := repos.NewSaleRepo(db)
	svc := services.NewRegisterService(saleRepo, &captureSubmitter{}, services.UnsupportedDraftStore{})

	const sid = "s2"
	r := svc.Register(sid)
	p, _ := prodRepo.Get("arroz-1kg")
	r.AddToCart(p)

	// still on the cart screen
	if _, _, err := svc.Confirm(context.Background(), sid); !errors.Is(err, pos.ErrNotPaying) {
		t.Fatalf("want ErrNotPaying, got %v", err)
	}
}

func TestSaveDraftIsNamedExtensionPoint(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	svc := services.NewRegisterService(repos.NewSaleRepo(db), &captureSubmitter{}, services.UnsupportedDraftStore{})
	if err := svc.SaveDraft(context.Background(), "s1"); !errors.Is(err, services.ErrDraftsUnsupported) {
		t.Fatalf("want ErrDraftsUnsupported, got %v", err)
	}
}
