package vendors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/dto"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/vendorservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
)

func NewMock(t *testing.T) (*VendorHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(method, id, body string, userID uuid.UUID, role string) *http.Request {
	req := httptest.NewRequest(method, "/api/vendors", bytes.NewBufferString(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.RoleKey, role)
	return req.WithContext(ctx)
}

func TestCreateVendor(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Created",
			body: `{"business_name":"Alice Bakery","category":"food"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateVendor(gomock.Any(), userID, domain.RoleMember, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ uuid.UUID, _ string, v *domain.Vendor) (*domain.Vendor, error) {
						assert.Equal(t, "Alice Bakery", v.BusinessName)
						v.ID = uuid.New()
						v.UserID = userID
						return v, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Missing business name",
			body:         `{"category":"food"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Duplicate",
			body: `{"business_name":"Alice Bakery"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateVendor(gomock.Any(), userID, domain.RoleMember, gomock.Any()).Return(nil, vendorservice.ErrVendorExists)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"Vendor profile already exists"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.CreateVendor(rr, newRequest(http.MethodPost, "", tt.body, userID, domain.RoleMember))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestGetMyVendor(t *testing.T) {
	userID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().GetMyVendor(gomock.Any(), userID).Return(&domain.Vendor{UserID: userID, BusinessName: "Shop"}, nil)

		rr := httptest.NewRecorder()
		handler.GetMyVendor(rr, newRequest(http.MethodGet, "", "", userID, domain.RoleVendor))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp dto.VendorDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Shop", resp.BusinessName)
	})

	t.Run("Missing", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().GetMyVendor(gomock.Any(), userID).Return(nil, vendorservice.ErrVendorNotFound)

		rr := httptest.NewRecorder()
		handler.GetMyVendor(rr, newRequest(http.MethodGet, "", "", userID, domain.RoleMember))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestValidateVendor(t *testing.T) {
	adminID := uuid.New()
	vendorID := uuid.New()

	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Validated",
			id:   vendorID.String(),
			body: `{"validated":true}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Validate(gomock.Any(), vendorID, true).Return(&domain.Vendor{ID: vendorID, Validated: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Revoked",
			id:   vendorID.String(),
			body: `{"validated":false}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Validate(gomock.Any(), vendorID, false).Return(&domain.Vendor{ID: vendorID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Flag missing",
			id:           vendorID.String(),
			body:         `{}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Bad id",
			id:           "nope",
			body:         `{"validated":true}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown vendor",
			id:   vendorID.String(),
			body: `{"validated":true}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Validate(gomock.Any(), vendorID, true).Return(nil, vendorservice.ErrVendorNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Failure",
			id:   vendorID.String(),
			body: `{"validated":true}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Validate(gomock.Any(), vendorID, true).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.ValidateVendor(rr, newRequest(http.MethodPatch, tt.id, tt.body, adminID, domain.RoleAdmin))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
