package profiledelivery

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-budget/internal/deliverytest"
	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/profileservice"
	"github.com/go-petr/pet-budget/internal/syncbus"
	"github.com/go-petr/pet-budget/pkg/randompkg"
	"github.com/go-petr/pet-budget/pkg/web"
)

func TestMain(m *testing.M) {
	if err := deliverytest.Setup(); err != nil {
		fmt.Fprintf(os.Stderr, "deliverytest.Setup returned error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (deliverytest.Server, *MockService) {
	t.Helper()

	service := NewMockService(gomock.NewController(t))
	handler := NewHandler(service)

	return deliverytest.NewServer(t, handler.Register), service
}

func multipartBody(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, FileField, filename))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	require.NoError(t, err)

	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &body, mw.FormDataContentType()
}

func TestGetUserUsesTokenEmail(t *testing.T) {
	ownerID := randompkg.Owner()
	email := ownerID + "@example.com"
	profile := domain.UserProfile{OwnerID: ownerID, Email: email}

	server, service := newTestServer(t)
	service.EXPECT().
		GetUser(gomock.Any(), gomock.Eq(ownerID), gomock.Eq(email)).
		Times(1).
		Return(web.OK(profile))

	recorder := server.Do(t, http.MethodGet, "/profile/user", ownerID, nil)

	if got := recorder.Code; got != http.StatusOK {
		t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
	}

	res := deliverytest.Decode[domain.UserProfile](t, recorder)
	if res.Data.Email != email {
		t.Errorf("res.Data.Email = %q, want %q", res.Data.Email, email)
	}
}

func TestUpdateCompany(t *testing.T) {
	ownerID := randompkg.Owner()
	currency := "XXX"
	form := domain.CompanyProfileForm{Currency: &currency}

	server, service := newTestServer(t)
	service.EXPECT().
		UpdateCompany(gomock.Any(), gomock.Eq(ownerID), gomock.Eq(form)).
		Times(1).
		Return(web.FailWith(domain.CompanyProfile{OwnerID: ownerID}, domain.NewValidationError("currency is not supported")))

	recorder := server.Do(t, http.MethodPut, "/profile/company", ownerID, deliverytest.JSONBody(t, form))

	if got := recorder.Code; got != http.StatusBadRequest {
		t.Errorf("Status code: got %v, want %v", got, http.StatusBadRequest)
	}

	res := deliverytest.Decode[domain.CompanyProfile](t, recorder)
	if res.Error != "currency is not supported" {
		t.Errorf(`res.Error=%q, want %q`, res.Error, "currency is not supported")
	}
}

func TestUploadImage(t *testing.T) {
	ownerID := randompkg.Owner()
	data := []byte("\x89PNG fake image")

	testCases := []struct {
		name           string
		build          func(t *testing.T) (*bytes.Buffer, string)
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			build: func(t *testing.T) (*bytes.Buffer, string) {
				return multipartBody(t, "me.PNG", "image/png", data)
			},
			buildStubs: func(service *MockService) {
				want := domain.Upload{Name: "me.PNG", ContentType: "image/png", Data: data}

				service.EXPECT().
					UploadImage(gomock.Any(), gomock.Eq(ownerID), gomock.Any(), gomock.Eq(want)).
					Times(1).
					Return(web.OK(domain.UserProfile{OwnerID: ownerID, ImageRef: "mem://avatars/" + ownerID + "/image/1.png"}))
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "MissingFile",
			build: func(t *testing.T) (*bytes.Buffer, string) {
				var body bytes.Buffer
				mw := multipart.NewWriter(&body)
				require.NoError(t, mw.WriteField("note", "no file"))
				require.NoError(t, mw.Close())

				return &body, mw.FormDataContentType()
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					UploadImage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "file is required",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, service := newTestServer(t)
			tc.buildStubs(service)

			body, contentType := tc.build(t)

			req, err := http.NewRequest(http.MethodPost, "/profile/user/image", body)
			require.NoError(t, err)
			req.Header.Set("Content-Type", contentType)

			recorder := server.Serve(t, req, ownerID)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := deliverytest.Decode[domain.UserProfile](t, recorder)
			if res.Error != tc.wantError {
				t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
			}
		})
	}
}

func TestEvents(t *testing.T) {
	ownerID := randompkg.Owner()
	bus := syncbus.New()
	watcher := profileservice.New(nil, nil, nil, bus).Watch(ownerID)

	ctx := context.Background()
	events := []syncbus.Event{
		{Topic: syncbus.TopicCompanyProfileUpdated, OwnerID: ownerID, Payload: domain.CompanyProfile{OwnerID: ownerID, Name: "Acme"}},
		{Topic: syncbus.TopicUserProfileUpdated, OwnerID: "someone-else", Payload: domain.UserProfile{OwnerID: "someone-else"}},
		{Topic: syncbus.TopicUserProfileUpdated, OwnerID: ownerID, Payload: domain.UserProfile{OwnerID: ownerID, FullName: "Ada"}},
	}

	for _, e := range events {
		require.NoError(t, bus.Publish(ctx, e))
	}

	// Buffered events are still delivered after Close, then the stream ends.
	watcher.Close()

	server, service := newTestServer(t)
	service.EXPECT().
		Watch(gomock.Eq(ownerID)).
		Times(1).
		Return(watcher)

	recorder := server.Do(t, http.MethodGet, "/profile/events", ownerID, nil)

	if got := recorder.Code; got != http.StatusOK {
		t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
	}

	if got := recorder.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/event-stream") {
		t.Errorf("Content-Type = %q, want text/event-stream", got)
	}

	body := recorder.Body.String()
	for _, want := range []string{"event:companyProfileUpdated", `"name":"Acme"`, "event:userProfileUpdated", `"full_name":"Ada"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body does not contain %q:\n%s", want, body)
		}
	}

	if strings.Contains(body, "someone-else") {
		t.Errorf("body contains an event of another owner:\n%s", body)
	}
}
