package handlers

import (
	"github.com/jmoiron/sqlx"

	"garutech/internal/catalog"
	"garutech/internal/config"
	"garutech/internal/repos"
	"garutech/internal/services"
)

type Deps struct {
	CatalogHandler *CatalogHandler
	SearchHandler  *SearchHandler
	CartHandler    *CartHandler
	OrderHandler   *OrderHandler
	ContactHandler *ContactHandler
	AdminHandler   *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, eng *catalog.Engine, prodRepo *repos.ProductRepo) *Deps {
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	contactRepo := repos.NewContactRepo(db)

	cartSvc := services.NewCartService(cartRepo, eng)
	orderSvc := services.NewOrderService(cartSvc, orderRepo, cfg.WhatsAppNumber)
	contactSvc := services.NewContactService(contactRepo)

	return &Deps{
		CatalogHandler: &CatalogHandler{Catalog: eng},
		SearchHandler:  &SearchHandler{Catalog: eng},
		CartHandler:    &CartHandler{Cart: cartSvc},
		OrderHandler:   &OrderHandler{Order: orderSvc, Repo: orderRepo},
		ContactHandler: &ContactHandler{Contacts: contactSvc},
		AdminHandler: &AdminHandler{
			Products: prodRepo,
			Store:    eng.Store(),
			Orders:   orderRepo,
			Contacts: contactSvc,
		},
	}
}
