package dossiers

import (
	"context"
	"net/http"
	"time"

	"cpn-service/internal/app/contracts"
	"cpn-service/internal/pkg/constvars"
	"cpn-service/internal/pkg/dto/requests"
	"cpn-service/internal/pkg/exceptions"
	"cpn-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DossierController struct {
	Log            *zap.Logger
	DossierUsecase contracts.DossierUsecase
}

func NewDossierController(logger *zap.Logger, dossierUsecase contracts.DossierUsecase) *DossierController {
	return &DossierController{
		Log:            logger,
		DossierUsecase: dossierUsecase,
	}
}

func (ctrl *DossierController) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := new(requests.CreateDossier)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.DossierUsecase.Create(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePatientSuccess, result)
}

func (ctrl *DossierController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	search := r.URL.Query().Get(constvars.URLQueryParamSearch)
	result, err := ctrl.DossierUsecase.Search(ctx, search)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDossiersSuccess, result)
}

func (ctrl *DossierController) FindByUniqueID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	uniqueID := chi.URLParam(r, constvars.URLParamDossierUniqueID)
	if uniqueID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamDossierUniqueID))
		return
	}

	result, err := ctrl.DossierUsecase.FindByUniqueID(ctx, uniqueID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDossierSuccess, result)
}
