package services

import (
	"ventapos/internal/domain"
	"ventapos/internal/repos"
)

// CatalogService is the read-only product/customer source for the register.
// The catalog is refreshed out-of-band; the register never writes to it.
type CatalogService struct {
	Prods *repos.ProductRepo
	Custs *repos.CustomerRepo
}

func NewCatalogService(prods *repos.ProductRepo, custs *repos.CustomerRepo) *CatalogService {
	return &CatalogService{Prods: prods, Custs: custs}
}

func (s *CatalogService) Products() ([]domain.Product, error) { return s.Prods.List() }

func (s *CatalogService) Product(id string) (domain.Product, error) { return s.Prods.Get(id) }

func (s *CatalogService) Customers() ([]domain.Customer, error) { return s.Custs.List() }

func (s *CatalogService) Customer(id string) (domain.Customer, error) { return s.Custs.Get(id) }
