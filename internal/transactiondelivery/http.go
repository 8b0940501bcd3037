// Package transactiondelivery manages delivery layer of transactions.
package transactiondelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/middleware"
	"github.com/go-petr/pet-budget/internal/render"
	"github.com/go-petr/pet-budget/pkg/web"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	List(ctx context.Context, ownerID string, f domain.TransactionFilter) web.Result[[]domain.Transaction]
	Get(ctx context.Context, ownerID, id string) web.Result[domain.Transaction]
	Create(ctx context.Context, ownerID string, f domain.TransactionForm) web.Result[domain.Transaction]
	Update(ctx context.Context, ownerID, id string, patch domain.TransactionPatch) web.Result[domain.Transaction]
	Delete(ctx context.Context, ownerID, id string) web.Result[bool]
	Summary(ctx context.Context, ownerID string, f domain.TransactionFilter) web.Result[domain.Summary]
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

// Register mounts the transaction routes on rg.
func (h *Handler) Register(rg gin.IRouter) {
	rg.GET("/transactions", h.List)
	rg.GET("/transactions/summary", h.Summary)
	rg.GET("/transactions/:id", h.Get)
	rg.POST("/transactions", h.Create)
	rg.PATCH("/transactions/:id", h.Update)
	rg.DELETE("/transactions/:id", h.Delete)
}

type filterQuery struct {
	From     string `form:"from" binding:"omitempty,date"`
	To       string `form:"to" binding:"omitempty,date"`
	Kind     string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Category string `form:"category"`
	Search   string `form:"q"`
}

// filter converts the already validated query.
func (q filterQuery) filter() domain.TransactionFilter {
	from, _ := domain.ParseDate(q.From)
	to, _ := domain.ParseDate(q.To)

	return domain.TransactionFilter{
		From:     from,
		To:       to,
		Kind:     domain.Kind(q.Kind),
		Category: q.Category,
		Search:   q.Search,
	}
}

// List handles http request to list transactions.
func (h *Handler) List(gctx *gin.Context) {
	var q filterQuery
	if err := gctx.ShouldBindQuery(&q); err != nil {
		render.BindError(gctx, err)
		return
	}

	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusOK, h.service.List(gctx.Request.Context(), ownerID, q.filter()))
}

// Summary handles http request to aggregate transactions.
func (h *Handler) Summary(gctx *gin.Context) {
	var q filterQuery
	if err := gctx.ShouldBindQuery(&q); err != nil {
		render.BindError(gctx, err)
		return
	}

	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusOK, h.service.Summary(gctx.Request.Context(), ownerID, q.filter()))
}

// Get handles http request to get a transaction.
func (h *Handler) Get(gctx *gin.Context) {
	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusOK, h.service.Get(gctx.Request.Context(), ownerID, gctx.Param("id")))
}

// Create handles http request to create a transaction.
func (h *Handler) Create(gctx *gin.Context) {
	var form domain.TransactionForm
	if err := gctx.ShouldBindJSON(&form); err != nil {
		render.BindError(gctx, err)
		return
	}

	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusCreated, h.service.Create(gctx.Request.Context(), ownerID, form))
}

// Update handles http request to patch a transaction.
func (h *Handler) Update(gctx *gin.Context) {
	var patch domain.TransactionPatch
	if err := gctx.ShouldBindJSON(&patch); err != nil {
		render.BindError(gctx, err)
		return
	}

	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusOK, h.service.Update(gctx.Request.Context(), ownerID, gctx.Param("id"), patch))
}

// Delete handles http request to delete a transaction. Deleting an absent
// transaction succeeds with false.
func (h *Handler) Delete(gctx *gin.Context) {
	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusOK, h.service.Delete(gctx.Request.Context(), ownerID, gctx.Param("id")))
}
