package handlers

import (
	"github.com/rogerio-castellano/paintchain/internal/analytics"
	"github.com/rogerio-castellano/paintchain/internal/auth"
	"github.com/rogerio-castellano/paintchain/internal/movements"
	repo "github.com/rogerio-castellano/paintchain/internal/repo"
)

var (
	paintRepo  repo.PaintRepository
	dealerRepo repo.DealerRepository
	orderRepo  repo.OrderRepository
	demandRepo repo.DemandRepository
	resaleRepo repo.ResaleRepository

	movementLog movements.Log
	engine      *analytics.Engine
	issuer      *auth.Issuer
	strictDates bool
)

func SetPaintRepo(r repo.PaintRepository) {
	paintRepo = r
}

func SetDealerRepo(r repo.DealerRepository) {
	dealerRepo = r
}

func SetOrderRepo(r repo.OrderRepository) {
	orderRepo = r
}

func SetDemandRepo(r repo.DemandRepository) {
	demandRepo = r
}

func SetResaleRepo(r repo.ResaleRepository) {
	resaleRepo = r
}

// SetStore wires every repository of s.
func SetStore(s repo.Store) {
	SetPaintRepo(s.Paints)
	SetDealerRepo(s.Dealers)
	SetOrderRepo(s.Orders)
	SetDemandRepo(s.Demand)
	SetResaleRepo(s.Resale)
}

func SetMovementLog(l movements.Log) {
	movementLog = l
}

func SetEngine(e *analytics.Engine) {
	engine = e
}

func SetIssuer(i *auth.Issuer) {
	issuer = i
}

// SetStrictDates makes dead-stock views fail on unparsable lastSoldDate values.
func SetStrictDates(strict bool) {
	strictDates = strict
}

func store() repo.Store {
	return repo.Store{
		Paints:  paintRepo,
		Dealers: dealerRepo,
		Orders:  orderRepo,
		Demand:  demandRepo,
		Resale:  resaleRepo,
	}
}
