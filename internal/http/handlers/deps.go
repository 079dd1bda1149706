package handlers

import (
	"ventapos/internal/repos"
	"ventapos/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler     *AuthHandler
	CatalogHandler  *CatalogHandler
	RegisterHandler *RegisterHandler
}

func NewDeps(db *sqlx.DB, auth *services.AuthService, submitter services.Submitter) *Deps {
	prodRepo := repos.NewProductRepo(db)
	custRepo := repos.NewCustomerRepo(db)
	saleRepo := repos.NewSaleRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo, custRepo)
	registerSvc := services.NewRegisterService(saleRepo, submitter, services.UnsupportedDraftStore{})

	return &Deps{
		AuthHandler:     &AuthHandler{Auth: auth},
		CatalogHandler:  &CatalogHandler{Catalog: catalogSvc},
		RegisterHandler: &RegisterHandler{Registers: registerSvc, Catalog: catalogSvc},
	}
}
