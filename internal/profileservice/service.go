// Package profileservice manages business logic layer of user and company profiles.
//
// Every successful profile write is published on the sync bus so that other
// consumers of the same owner converge without reloading.
package profileservice

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/model"
	"github.com/go-petr/pet-budget/internal/syncbus"
	"github.com/go-petr/pet-budget/pkg/currencypkg"
	"github.com/go-petr/pet-budget/pkg/web"
)

// MaxUploadSize is the largest accepted image or logo.
const MaxUploadSize = 5 << 20

// UserRepo provides data access layer interface for user profiles.
type UserRepo interface {
	Get(ctx context.Context, ownerID string) (domain.UserProfile, error)
	Put(ctx context.Context, p domain.UserProfile) error
}

// CompanyRepo provides data access layer interface for company profiles.
type CompanyRepo interface {
	Get(ctx context.Context, ownerID string) (domain.CompanyProfile, error)
	Put(ctx context.Context, p domain.CompanyProfile) error
}

// Uploader stores binary objects and returns durable references to them.
type Uploader interface {
	Put(ctx context.Context, name string, u domain.Upload) (string, error)
	Delete(ctx context.Context, ref string) error
}

// Bus is the sync bus profile updates are published on.
type Bus interface {
	Publish(ctx context.Context, e syncbus.Event) error
	Subscribe(topic syncbus.Topic, h syncbus.Handler) func()
}

// Service facilitates profile service layer logic.
type Service struct {
	users     UserRepo
	companies CompanyRepo
	uploader  Uploader
	bus       Bus
	now       func() time.Time
	newID     func() string
}

// New returns profile service struct to manage profile bussines logic.
func New(users UserRepo, companies CompanyRepo, uploader Uploader, bus Bus) *Service {
	return &Service{
		users:     users,
		companies: companies,
		uploader:  uploader,
		bus:       bus,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// GetUser returns the user profile of the owner. An owner without a stored
// profile gets an empty one carrying the identity email.
func (s *Service) GetUser(ctx context.Context, ownerID, email string) web.Result[domain.UserProfile] {
	if ownerID == "" {
		return web.Fail[domain.UserProfile](domain.ErrMissingOwner)
	}

	p, err := s.users.Get(ctx, ownerID)
	if errors.Is(err, domain.ErrNotFound) {
		return web.OK(domain.UserProfile{OwnerID: ownerID, Email: email})
	}

	if err != nil {
		return web.Fail[domain.UserProfile](err)
	}

	return web.OK(p)
}

// GetCompany returns the company profile of the owner. An owner without a stored
// profile gets an empty one in the default currency.
func (s *Service) GetCompany(ctx context.Context, ownerID string) web.Result[domain.CompanyProfile] {
	if ownerID == "" {
		return web.Fail[domain.CompanyProfile](domain.ErrMissingOwner)
	}

	p, err := s.companies.Get(ctx, ownerID)
	if errors.Is(err, domain.ErrNotFound) {
		return web.OK(domain.CompanyProfile{OwnerID: ownerID, Currency: currencypkg.USD})
	}

	if err != nil {
		return web.Fail[domain.CompanyProfile](err)
	}

	return web.OK(p)
}

// UpdateUser validates f, merges it into the user profile and publishes the result.
func (s *Service) UpdateUser(ctx context.Context, ownerID, email string, f domain.UserProfileForm) web.Result[domain.UserProfile] {
	if err := model.ValidateUserProfile(f); err != nil {
		return web.Fail[domain.UserProfile](err)
	}

	existing := s.GetUser(ctx, ownerID, email)
	if !existing.Success {
		return existing
	}

	p := model.ApplyUserProfile(existing.Data, f, s.now())

	return s.saveUser(ctx, p)
}

// UpdateCompany validates f, merges it into the company profile and publishes the result.
func (s *Service) UpdateCompany(ctx context.Context, ownerID string, f domain.CompanyProfileForm) web.Result[domain.CompanyProfile] {
	if err := model.ValidateCompanyProfile(f); err != nil {
		return web.Fail[domain.CompanyProfile](err)
	}

	existing := s.GetCompany(ctx, ownerID)
	if !existing.Success {
		return existing
	}

	p := model.ApplyCompanyProfile(existing.Data, f, s.now())

	return s.saveCompany(ctx, p)
}

// UploadImage stores the user image and keeps its reference on the profile.
func (s *Service) UploadImage(ctx context.Context, ownerID, email string, u domain.Upload) web.Result[domain.UserProfile] {
	if err := validateUpload(u); err != nil {
		return web.Fail[domain.UserProfile](err)
	}

	existing := s.GetUser(ctx, ownerID, email)
	if !existing.Success {
		return existing
	}

	ref, err := s.uploader.Put(ctx, s.objectName(ownerID, "image", u.Name), u)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("owner_id", ownerID).Msg("cannot upload image")
		return web.Fail[domain.UserProfile](fmt.Errorf("%w: %v", domain.ErrStorage, err))
	}

	p := existing.Data
	old := p.ImageRef
	p.ImageRef = ref
	p.UpdatedAt = s.now()

	res := s.saveUser(ctx, p)
	s.dropObject(ctx, res.Success, old, ref)

	return res
}

// UploadLogo stores the company logo and keeps its reference on the profile.
func (s *Service) UploadLogo(ctx context.Context, ownerID string, u domain.Upload) web.Result[domain.CompanyProfile] {
	if err := validateUpload(u); err != nil {
		return web.Fail[domain.CompanyProfile](err)
	}

	existing := s.GetCompany(ctx, ownerID)
	if !existing.Success {
		return existing
	}

	ref, err := s.uploader.Put(ctx, s.objectName(ownerID, "logo", u.Name), u)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("owner_id", ownerID).Msg("cannot upload logo")
		return web.Fail[domain.CompanyProfile](fmt.Errorf("%w: %v", domain.ErrStorage, err))
	}

	p := existing.Data
	old := p.LogoRef
	p.LogoRef = ref
	p.UpdatedAt = s.now()

	res := s.saveCompany(ctx, p)
	s.dropObject(ctx, res.Success, old, ref)

	return res
}

func (s *Service) saveUser(ctx context.Context, p domain.UserProfile) web.Result[domain.UserProfile] {
	if err := s.users.Put(ctx, p); err != nil {
		return web.FailWith(p, err)
	}

	s.publish(ctx, syncbus.Event{Topic: syncbus.TopicUserProfileUpdated, OwnerID: p.OwnerID, Payload: p})

	return web.OK(p)
}

func (s *Service) saveCompany(ctx context.Context, p domain.CompanyProfile) web.Result[domain.CompanyProfile] {
	if err := s.companies.Put(ctx, p); err != nil {
		return web.FailWith(p, err)
	}

	s.publish(ctx, syncbus.Event{Topic: syncbus.TopicCompanyProfileUpdated, OwnerID: p.OwnerID, Payload: p})

	return web.OK(p)
}

// publish reports subscriber failures without failing the already stored write.
func (s *Service) publish(ctx context.Context, e syncbus.Event) {
	if err := s.bus.Publish(ctx, e); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("topic", string(e.Topic)).Msg("profile update not delivered")
	}
}

// dropObject removes the object the profile no longer points to:
// the replaced one after a stored write, the fresh upload otherwise.
func (s *Service) dropObject(ctx context.Context, saved bool, old, fresh string) {
	ref := fresh
	if saved {
		ref = old
	}

	if ref == "" {
		return
	}

	if err := s.uploader.Delete(ctx, ref); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("ref", ref).Msg("cannot delete object")
	}
}

func (s *Service) objectName(ownerID, kind, filename string) string {
	return path.Join(ownerID, kind, s.newID()+strings.ToLower(path.Ext(filename)))
}

func validateUpload(u domain.Upload) error {
	var reasons []string

	if len(u.Data) == 0 {
		reasons = append(reasons, "file is required")
	}

	if len(u.Data) > MaxUploadSize {
		reasons = append(reasons, fmt.Sprintf("file must be at most %d bytes", MaxUploadSize))
	}

	if !strings.HasPrefix(u.ContentType, "image/") {
		reasons = append(reasons, "file must be an image")
	}

	if len(reasons) > 0 {
		return domain.NewValidationError(reasons...)
	}

	return nil
}
