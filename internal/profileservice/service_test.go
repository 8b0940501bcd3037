package profileservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/kvrepo"
	"github.com/go-petr/pet-budget/internal/objectstore"
	"github.com/go-petr/pet-budget/internal/recordrepo"
	"github.com/go-petr/pet-budget/internal/recordstore"
	"github.com/go-petr/pet-budget/internal/syncbus"
)

var testNow = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	service *Service
	bus     *syncbus.Bus
	objects *objectstore.Memory
	ns      *kvrepo.Memory
}

func newFixture(t *testing.T, quota int) fixture {
	t.Helper()

	ns := kvrepo.NewMemory(quota)
	store := recordstore.New(ns)
	bus := syncbus.New()
	objects := objectstore.NewMemory("budget")

	t.Cleanup(bus.Close)

	s := New(
		recordrepo.NewLocalProfiles[domain.UserProfile](store, domain.ProfileUser),
		recordrepo.NewLocalProfiles[domain.CompanyProfile](store, domain.ProfileCompany),
		objects,
		bus,
	)
	s.now = func() time.Time { return testNow }

	return fixture{service: s, bus: bus, objects: objects, ns: ns}
}

func str(s string) *string {
	return &s
}

func png() domain.Upload {
	return domain.Upload{Name: "Me.PNG", ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
}

func TestGetDefaults(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)

	user := f.service.GetUser(ctx, "u1", "ann@example.com")
	require.True(t, user.Success)
	require.Equal(t, domain.UserProfile{OwnerID: "u1", Email: "ann@example.com"}, user.Data)

	company := f.service.GetCompany(ctx, "u1")
	require.True(t, company.Success)
	require.Equal(t, "USD", company.Data.Currency)

	require.ErrorIs(t, f.service.GetUser(ctx, "", "").Cause, domain.ErrMissingOwner)
}

func TestUpdateUserPublishes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)

	var got []syncbus.Event

	f.bus.Subscribe(syncbus.TopicUserProfileUpdated, func(ctx context.Context, e syncbus.Event) error {
		got = append(got, e)
		return nil
	})

	res := f.service.UpdateUser(ctx, "u1", "ann@example.com", domain.UserProfileForm{FullName: str(" Ann Lee ")})
	require.True(t, res.Success, res.Error)
	require.Equal(t, "Ann Lee", res.Data.FullName)
	require.Equal(t, "ann@example.com", res.Data.Email)
	require.Equal(t, testNow, res.Data.UpdatedAt)

	require.Len(t, got, 1)
	require.Equal(t, "u1", got[0].OwnerID)
	require.Equal(t, res.Data, got[0].Payload)

	stored := f.service.GetUser(ctx, "u1", "other@example.com")
	require.Equal(t, res.Data, stored.Data)

	invalid := f.service.UpdateUser(ctx, "u1", "", domain.UserProfileForm{Email: str("not-an-email")})
	require.False(t, invalid.Success)
	require.Equal(t, "email must be a valid email", invalid.Error)
	require.Len(t, got, 1)
}

func TestUpdateCompany(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)

	res := f.service.UpdateCompany(ctx, "u1", domain.CompanyProfileForm{Name: str("Acme"), Currency: str("EUR")})
	require.True(t, res.Success, res.Error)
	require.Equal(t, "Acme", res.Data.Name)
	require.Equal(t, "EUR", res.Data.Currency)

	res = f.service.UpdateCompany(ctx, "u1", domain.CompanyProfileForm{TaxID: str("X-1")})
	require.True(t, res.Success, res.Error)
	require.Equal(t, "Acme", res.Data.Name)
	require.Equal(t, "X-1", res.Data.TaxID)

	invalid := f.service.UpdateCompany(ctx, "u1", domain.CompanyProfileForm{Currency: str("XYZ")})
	require.False(t, invalid.Success)
	require.Equal(t, "currency is not supported", invalid.Error)
}

func TestUpdateStorageFailureKeepsInput(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10)

	published := 0
	f.bus.Subscribe(syncbus.TopicCompanyProfileUpdated, func(ctx context.Context, e syncbus.Event) error {
		published++
		return nil
	})

	res := f.service.UpdateCompany(ctx, "u1", domain.CompanyProfileForm{Name: str("Acme")})
	require.False(t, res.Success)
	require.ErrorIs(t, res.Cause, domain.ErrStorage)
	require.Equal(t, "Acme", res.Data.Name)
	require.Zero(t, published)
}

func TestUploadImage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)
	f.service.newID = func() string { return "img1" }

	res := f.service.UploadImage(ctx, "u1", "", png())
	require.True(t, res.Success, res.Error)
	require.Equal(t, "mem://budget/u1/image/img1.png", res.Data.ImageRef)
	require.Equal(t, 1, f.objects.Len())

	f.service.newID = func() string { return "img2" }

	res = f.service.UploadImage(ctx, "u1", "", png())
	require.True(t, res.Success, res.Error)
	require.Equal(t, "mem://budget/u1/image/img2.png", res.Data.ImageRef)
	require.Equal(t, 1, f.objects.Len())

	invalid := f.service.UploadImage(ctx, "u1", "", domain.Upload{Name: "notes.txt", ContentType: "text/plain"})
	require.False(t, invalid.Success)
	require.Equal(t, "file is required; file must be an image", invalid.Error)
}

func TestUploadLogoStorageFailureDropsObject(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10)

	res := f.service.UploadLogo(ctx, "u1", png())
	require.False(t, res.Success)
	require.ErrorIs(t, res.Cause, domain.ErrStorage)
	require.Zero(t, f.objects.Len())
}

type failingUploader struct{}

func (failingUploader) Put(context.Context, string, domain.Upload) (string, error) {
	return "", errors.New("bucket unavailable")
}

func (failingUploader) Delete(context.Context, string) error { return nil }

func TestUploadFailureLeavesProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)
	f.service.uploader = failingUploader{}

	res := f.service.UploadLogo(ctx, "u1", png())
	require.False(t, res.Success)
	require.ErrorIs(t, res.Cause, domain.ErrStorage)

	_, ok, err := f.ns.Get(ctx, recordstore.ProfileKey(domain.ProfileCompany, "u1"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWatcher(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)

	w1 := f.service.Watch("u1")
	w2 := f.service.Watch("u1")
	stranger := f.service.Watch("u2")

	defer stranger.Close()

	res := f.service.UpdateCompany(ctx, "u1", domain.CompanyProfileForm{Name: str("Acme")})
	require.True(t, res.Success, res.Error)

	for _, w := range []*Watcher{w1, w2} {
		got, ok := w.Company()
		require.True(t, ok)
		require.Equal(t, res.Data, got)

		e := <-w.Updates()
		require.Equal(t, syncbus.TopicCompanyProfileUpdated, e.Topic)
	}

	_, ok := stranger.Company()
	require.False(t, ok)
	require.Empty(t, stranger.Updates())

	w2.Close()
	w2.Close()

	_, open := <-w2.Updates()
	require.False(t, open)

	res = f.service.UpdateCompany(ctx, "u1", domain.CompanyProfileForm{Name: str("Acme Ltd")})
	require.True(t, res.Success, res.Error)

	got, _ := w1.Company()
	require.Equal(t, "Acme Ltd", got.Name)

	got, _ = w2.Company()
	require.Equal(t, "Acme", got.Name)

	w1.Close()
	require.Equal(t, 1, f.bus.Subscribers(syncbus.TopicCompanyProfileUpdated))
}
