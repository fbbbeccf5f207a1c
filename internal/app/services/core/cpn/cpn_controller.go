package cpn

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

type CpnController struct {
	Log        *zap.Logger
	CpnUsecase contracts.CpnUsecase
}

func NewCpnController(logger *zap.Logger, cpnUsecase contracts.CpnUsecase) *CpnController {
	return &CpnController{
		Log:        logger,
		CpnUsecase: cpnUsecase,
	}
}

func (ctrl *CpnController) GetForm(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CpnUsecase.RenderForm(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCpnFormSuccess, result)
}

func (ctrl *CpnController) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	request := new(requests.SubmitCpn)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.CpnUsecase.Submit(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCpnSuccess, result)
}

func (ctrl *CpnController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	lmpDate := r.URL.Query().Get(constvars.URLQueryParamLMP)
	result, err := ctrl.CpnUsecase.Schedule(ctx, lmpDate)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSchedulePreviewSuccess, result)
}

func (ctrl *CpnController) FindByPatient(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patientID := r.URL.Query().Get(constvars.URLQueryParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLQueryParamPatientID))
		return
	}

	result, err := ctrl.CpnUsecase.FindByPatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCpnListSuccess, result)
}

func (ctrl *CpnController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cpnID := chi.URLParam(r, constvars.URLParamCpnID)
	if cpnID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamCpnID))
		return
	}

	result, err := ctrl.CpnUsecase.FindByID(ctx, cpnID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCpnSuccess, result)
}
