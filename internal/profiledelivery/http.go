// Package profiledelivery manages delivery layer of user and company profiles.
package profiledelivery

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/middleware"
	"github.com/go-petr/pet-budget/internal/profileservice"
	"github.com/go-petr/pet-budget/internal/render"
	"github.com/go-petr/pet-budget/pkg/web"
)

// FileField is the multipart field holding uploaded images.
const FileField = "file"

// Service provides service layer interface needed by profile delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package profiledelivery
type Service interface {
	GetUser(ctx context.Context, ownerID, email string) web.Result[domain.UserProfile]
	GetCompany(ctx context.Context, ownerID string) web.Result[domain.CompanyProfile]
	UpdateUser(ctx context.Context, ownerID, email string, f domain.UserProfileForm) web.Result[domain.UserProfile]
	UpdateCompany(ctx context.Context, ownerID string, f domain.CompanyProfileForm) web.Result[domain.CompanyProfile]
	UploadImage(ctx context.Context, ownerID, email string, u domain.Upload) web.Result[domain.UserProfile]
	UploadLogo(ctx context.Context, ownerID string, u domain.Upload) web.Result[domain.CompanyProfile]
	Watch(ownerID string) *profileservice.Watcher
}

// Handler facilitates profile delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns profile handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

// Register mounts the profile routes on rg.
func (h *Handler) Register(rg gin.IRouter) {
	rg.GET("/profile/user", h.GetUser)
	rg.PUT("/profile/user", h.UpdateUser)
	rg.POST("/profile/user/image", h.UploadImage)
	rg.GET("/profile/company", h.GetCompany)
	rg.PUT("/profile/company", h.UpdateCompany)
	rg.POST("/profile/company/logo", h.UploadLogo)
	rg.GET("/profile/events", h.Events)
}

// GetUser handles http request to get the user profile.
func (h *Handler) GetUser(gctx *gin.Context) {
	payload := middleware.AuthPayload(gctx)
	render.Result(gctx, http.StatusOK, h.service.GetUser(gctx.Request.Context(), payload.OwnerID, payload.Email))
}

// UpdateUser handles http request to update the user profile.
func (h *Handler) UpdateUser(gctx *gin.Context) {
	var form domain.UserProfileForm
	if err := gctx.ShouldBindJSON(&form); err != nil {
		render.BindError(gctx, err)
		return
	}

	payload := middleware.AuthPayload(gctx)
	render.Result(gctx, http.StatusOK, h.service.UpdateUser(gctx.Request.Context(), payload.OwnerID, payload.Email, form))
}

// UploadImage handles http request to replace the user image.
func (h *Handler) UploadImage(gctx *gin.Context) {
	u, err := readUpload(gctx)
	if err != nil {
		render.Error(gctx, err)
		return
	}

	payload := middleware.AuthPayload(gctx)
	render.Result(gctx, http.StatusOK, h.service.UploadImage(gctx.Request.Context(), payload.OwnerID, payload.Email, u))
}

// GetCompany handles http request to get the company profile.
func (h *Handler) GetCompany(gctx *gin.Context) {
	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusOK, h.service.GetCompany(gctx.Request.Context(), ownerID))
}

// UpdateCompany handles http request to update the company profile.
func (h *Handler) UpdateCompany(gctx *gin.Context) {
	var form domain.CompanyProfileForm
	if err := gctx.ShouldBindJSON(&form); err != nil {
		render.BindError(gctx, err)
		return
	}

	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusOK, h.service.UpdateCompany(gctx.Request.Context(), ownerID, form))
}

// UploadLogo handles http request to replace the company logo.
func (h *Handler) UploadLogo(gctx *gin.Context) {
	u, err := readUpload(gctx)
	if err != nil {
		render.Error(gctx, err)
		return
	}

	ownerID := middleware.AuthPayload(gctx).OwnerID
	render.Result(gctx, http.StatusOK, h.service.UploadLogo(gctx.Request.Context(), ownerID, u))
}

// Events streams the owner's profile updates as server-sent events until
// the client goes away.
func (h *Handler) Events(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	w := h.service.Watch(middleware.AuthPayload(gctx).OwnerID)
	defer w.Close()

	gctx.Header("Content-Type", "text/event-stream")
	gctx.Header("Cache-Control", "no-cache")
	gctx.Header("Connection", "keep-alive")
	gctx.Status(http.StatusOK)
	gctx.Writer.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-w.Updates():
			if !ok {
				return
			}

			l.Debug().Str("topic", string(e.Topic)).Msg("profile event")
			gctx.SSEvent(string(e.Topic), e.Payload)
			gctx.Writer.Flush()
		}
	}
}

// readUpload reads at most one byte past the size limit so that the service
// can reject oversized files.
func readUpload(gctx *gin.Context) (domain.Upload, error) {
	fh, err := gctx.FormFile(FileField)
	if err != nil {
		return domain.Upload{}, domain.NewValidationError("file is required")
	}

	f, err := fh.Open()
	if err != nil {
		return domain.Upload{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, profileservice.MaxUploadSize+1))
	if err != nil {
		return domain.Upload{}, err
	}

	return domain.Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
