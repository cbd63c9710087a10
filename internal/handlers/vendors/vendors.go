package vendors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/dto"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/vendorservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/utils"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/validate"
)

//go:generate mockgen -source=vendors.go -destination=mock_service.go -package=vendors

type Service interface {
	CreateVendor(ctx context.Context, userID uuid.UUID, role string, vendor *domain.Vendor) (*domain.Vendor, error)
	GetMyVendor(ctx context.Context, userID uuid.UUID) (*domain.Vendor, error)
	Validate(ctx context.Context, vendorID uuid.UUID, validated bool) (*domain.Vendor, error)
}

type VendorHandler struct {
	vendorService Service
}

func New(vendorService Service) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
	}
}

// CreateVendor godoc
//
//	@Summary		Open a vendor profile
//	@Description	Promotes the caller to the vendor role. Validated profiles receive the grant coins.
//	@Tags			Vendors
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateVendorRequestDTO	true	"Vendor profile"
//	@Success		201		{object}	dto.VendorDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Vendor profile already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/vendors [post]
func (h *VendorHandler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req dto.CreateVendorRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	vendor, err := h.vendorService.CreateVendor(r.Context(), userID, auth.Role(r.Context()), req.ToDomain())
	if err != nil {
		if errors.Is(err, vendorservice.ErrVendorExists) {
			utils.RespondWithError(w, http.StatusConflict, "Vendor profile already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromVendor(vendor))
}

// GetMyVendor godoc
//
//	@Summary	Get the caller's vendor profile
//	@Tags		Vendors
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.VendorDTO
//	@Failure	404	{object}	utils.Response	"Vendor not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/vendors/me [get]
func (h *VendorHandler) GetMyVendor(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	vendor, err := h.vendorService.GetMyVendor(r.Context(), userID)
	if err != nil {
		if errors.Is(err, vendorservice.ErrVendorNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Vendor not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromVendor(vendor))
}

// ValidateVendor godoc
//
//	@Summary	Validate or invalidate a vendor
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Vendor ID"
//	@Param		request	body		dto.ValidateVendorRequestDTO	true	"Validation flag"
//	@Success	200		{object}	dto.VendorDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Failure	404		{object}	utils.Response	"Vendor not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/vendors/{id}/validate [patch]
func (h *VendorHandler) ValidateVendor(w http.ResponseWriter, r *http.Request) {
	vendorID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid vendor id")
		return
	}

	var req dto.ValidateVendorRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	vendor, err := h.vendorService.Validate(r.Context(), vendorID, *req.Validated)
	if err != nil {
		if errors.Is(err, vendorservice.ErrVendorNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Vendor not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromVendor(vendor))
}
