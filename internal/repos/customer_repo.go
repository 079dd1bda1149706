package repos

import (
	"ventapos/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CustomerRepo struct{ db *sqlx.DB }

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) List() ([]domain.Customer, error) {
	out := []domain.Customer{}
	err := r.db.Select(&out, `SELECT id, name FROM customers ORDER BY LOWER(name)`)
	return out, err
}

func (r *CustomerRepo) Get(id string) (domain.Customer, error) {
	var c domain.Customer
	err := r.db.Get(&c, `SELECT id, name FROM customers WHERE id = ?`, id)
	return c, err
}
