// Package budgetdelivery manages delivery layer of budgets.
package budgetdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/middleware"
	"github.com/go-petr/pet-budget/internal/render"
	"github.com/go-petr/pet-budget/pkg/web"
)

// Service provides service layer interface needed by budget delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package budgetdelivery
type Service interface {
	List(ctx context.Context, ownerID string, f domain.BudgetFilter) web.Result[[]domain.Budget]
	Get(ctx context.Context, ownerID, id string) web.Result[domain.Budget]
	Create(ctx context.Context, ownerID string, f domain.BudgetForm) web.Result[domain.Budget]
	Update(ctx context.Context, ownerID, id string, patch domain.BudgetPatch) web.Result[domain.Budget]
	Delete(ctx context.Context, ownerID, id string) web.Result[bool]
	RefreshSpent(ctx context.Context, ownerID string) web.Result[[]domain.Budget]
}

// Handler facilitates budget delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns budget handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

// Register mounts the budget routes on rg.
func (h *Handler) Register(rg gin.IRouter) {
	rg.GET("/budgets", h.List)
	rg.GET("/budgets/:id", h.Get)
	rg.POST("/budgets", h.Create)
	rg.POST("/budgets/refresh", h.RefreshSpent)
	rg.PATCH("/budgets/:id", h.Update)
	rg.DELETE("/budgets/:id", h.Delete)
}

type listQuery struct {
	Active   bool   `form:"active"`
	Category string `form:"category"`
}

// List handles http request to list budgets.
func (h *Handler) List(gctx *gin.Context) {
	var q listQuery
	if err := gctx.ShouldBindQuery(&q); err != nil {
		render.BindError(gctx, err)
		return
	}

	ownerID := middleware.AuthPayload(gctx).OwnerID
	f := domain.BudgetFilter{ActiveOnly: q.Active, Category: q.Category}
	render.Result(gctx, http.StatusOK, h.service.List(gctx.Request.Context(), ownerID, f))
}

// Get handles http request to get a budget.
func (h *Handler) Get(gctx *gin.Context) {
	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusOK, h.service.Get(gctx.Request.Context(), ownerID, gctx.Param("id")))
}

// Create handles http request to create a budget.
func (h *Handler) Create(gctx *gin.Context) {
	var form domain.BudgetForm
	if err := gctx.ShouldBindJSON(&form); err != nil {
		render.BindError(gctx, err)
		return
	}

	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusCreated, h.service.Create(gctx.Request.Context(), ownerID, form))
}

// RefreshSpent handles http request to recompute spent amounts from transactions.
func (h *Handler) RefreshSpent(gctx *gin.Context) {
	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusOK, h.service.RefreshSpent(gctx.Request.Context(), ownerID))
}

// Update handles http request to patch a budget.
func (h *Handler) Update(gctx *gin.Context) {
	var patch domain.BudgetPatch
	if err := gctx.ShouldBindJSON(&patch); err != nil {
		render.BindError(gctx, err)
		return
	}

	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusOK, h.service.Update(gctx.Request.Context(), ownerID, gctx.Param("id"), patch))
}

// Delete handles http request to delete a budget.
func (h *Handler) Delete(gctx *gin.Context) {
	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusOK, h.service.Delete(gctx.Request.Context(), ownerID, gctx.Param("id")))
}
