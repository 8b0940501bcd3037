// Package exportdelivery manages delivery layer of data exports.
package exportdelivery

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/middleware"
	"github.com/go-petr/pet-budget/internal/render"
	"github.com/go-petr/pet-budget/pkg/web"
)

// Service provides service layer interface needed by export delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package exportdelivery
type Service interface {
	WriteTransactionsCSV(ctx context.Context, ownerID string, f domain.TransactionFilter, w io.Writer) error
	Backup(ctx context.Context, ownerID string) web.Result[domain.Backup]
}

// Handler facilitates export delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns export handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

// Register mounts the export routes on rg.
func (h *Handler) Register(rg gin.IRouter) {
	rg.GET("/export/transactions.csv", h.TransactionsCSV)
	rg.GET("/export/backup", h.Backup)
}

type csvQuery struct {
	From     string `form:"from" binding:"omitempty,date"`
	To       string `form:"to" binding:"omitempty,date"`
	Kind     string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Category string `form:"category"`
}

// TransactionsCSV handles http request to download transactions as CSV.
func (h *Handler) TransactionsCSV(gctx *gin.Context) {
	var q csvQuery
	if err := gctx.ShouldBindQuery(&q); err != nil {
		render.BindError(gctx, err)
		return
	}

	from, _ := domain.ParseDate(q.From)
	to, _ := domain.ParseDate(q.To)
	f := domain.TransactionFilter{From: from, To: to, Kind: domain.Kind(q.Kind), Category: q.Category}

	// Buffered so that a failed read still gets a JSON error.
	var buf bytes.Buffer
	if err := h.service.WriteTransactionsCSV(gctx.Request.Context(), middleware.AuthPayload(gctx).OwnerID, f, &buf); err != nil {
		render.Error(gctx, err)
		return
	}

	gctx.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	gctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Backup handles http request to download every record of the owner as JSON.
func (h *Handler) Backup(gctx *gin.Context) {
	res := h.service.Backup(gctx.Request.Context(), middleware.AuthPayload(gctx).OwnerID)
	if res.Success {
		name := fmt.Sprintf("backup-%s.json", res.Data.ExportedAt.Format("20060102"))
		gctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}

	render.Result(gctx, http.StatusOK, res)
}
