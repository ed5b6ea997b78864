package api

import (
	"time"

	"github.com/fuelhq/fuel/internal/auth"
	"github.com/fuelhq/fuel/internal/db"
	"github.com/fuelhq/fuel/internal/fooddata"
)

// FoodSource is the external food lookup the handlers depend on. The
// production implementation lives in internal/fooddata.
type FoodSource interface {
	Search(query string) ([]fooddata.FoodResult, error)
	LookupBarcode(code string) (*fooddata.FoodResult, error)
}

type Handler struct {
	repos    *db.Repositories
	verifier auth.TokenVerifier
	foods    FoodSource
	location *time.Location
}

func NewHandler(repos *db.Repositories, verifier auth.TokenVerifier, foods FoodSource, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		repos:    repos,
		verifier: verifier,
		foods:    foods,
		location: location,
	}
}
