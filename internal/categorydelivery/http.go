// Package categorydelivery manages delivery layer of categories.
package categorydelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/middleware"
	"github.com/go-petr/pet-budget/internal/render"
	"github.com/go-petr/pet-budget/pkg/web"
)

// Service provides service layer interface needed by category delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package categorydelivery
type Service interface {
	List(ctx context.Context, ownerID string, f domain.CategoryFilter) web.Result[[]domain.Category]
	Get(ctx context.Context, ownerID, id string) web.Result[domain.Category]
	Create(ctx context.Context, ownerID string, f domain.CategoryForm) web.Result[domain.Category]
	Update(ctx context.Context, ownerID, id string, patch domain.CategoryPatch) web.Result[domain.Category]
	Delete(ctx context.Context, ownerID, id string) web.Result[bool]
	SeedDefaults(ctx context.Context, ownerID string) web.Result[[]domain.Category]
}

// Handler facilitates category delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns category handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

// Register mounts the category routes on rg.
func (h *Handler) Register(rg gin.IRouter) {
	rg.GET("/categories", h.List)
	rg.GET("/categories/:id", h.Get)
	rg.POST("/categories", h.Create)
	rg.POST("/categories/defaults", h.SeedDefaults)
	rg.PATCH("/categories/:id", h.Update)
	rg.DELETE("/categories/:id", h.Delete)
}

type listQuery struct {
	Kind string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
}

// List handles http request to list categories.
func (h *Handler) List(gctx *gin.Context) {
	var q listQuery
	if err := gctx.ShouldBindQuery(&q); err != nil {
		render.BindError(gctx, err)
		return
	}

	ownerID := middleware.AuthPayload(gctx).OwnerID
	f := domain.CategoryFilter{Kind: domain.Kind(q.Kind)}
	render.Result(gctx, http.StatusOK, h.service.List(gctx.Request.Context(), ownerID, f))
}

// Get handles http request to get a category.
func (h *Handler) Get(gctx *gin.Context) {
	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusOK, h.service.Get(gctx.Request.Context(), ownerID, gctx.Param("id")))
}

// Create handles http request to create a category.
func (h *Handler) Create(gctx *gin.Context) {
	var form domain.CategoryForm
	if err := gctx.ShouldBindJSON(&form); err != nil {
		render.BindError(gctx, err)
		return
	}

	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusCreated, h.service.Create(gctx.Request.Context(), ownerID, form))
}

// SeedDefaults handles http request to create the default categories the owner lacks.
func (h *Handler) SeedDefaults(gctx *gin.Context) {
	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusOK, h.service.SeedDefaults(gctx.Request.Context(), ownerID))
}

// Update handles http request to patch a category.
func (h *Handler) Update(gctx *gin.Context) {
	var patch domain.CategoryPatch
	if err := gctx.ShouldBindJSON(&patch); err != nil {
		render.BindError(gctx, err)
		return
	}

	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusOK, h.service.Update(gctx.Request.Context(), ownerID, gctx.Param("id"), patch))
}

// Delete handles http request to delete a category.
func (h *Handler) Delete(gctx *gin.Context) {
	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusOK, h.service.Delete(gctx.Request.Context(), ownerID, gctx.Param("id")))
}
