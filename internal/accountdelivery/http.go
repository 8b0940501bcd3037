// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/middleware"
	"github.com/go-petr/pet-budget/internal/render"
	"github.com/go-petr/pet-budget/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Purge(ctx context.Context, ownerID string) web.Result[domain.PurgeReport]
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

// Register mounts the account routes on rg.
func (h *Handler) Register(rg gin.IRouter) {
	rg.DELETE("/account", h.Purge)
}

// Purge handles http request to remove everything stored for the owner.
func (h *Handler) Purge(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	ownerID := middleware.AuthPayload(gctx).OwnerID

	res := h.service.Purge(ctx, ownerID)
	if res.Success {
		zerolog.Ctx(ctx).Info().Interface("report", res.Data).Msg("account purged")
	}

	render.Result(gctx, http.StatusOK, res)
}
