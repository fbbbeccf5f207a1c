package antecedents

import (
	"context"
	"net/http"
	"strconv"
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

type AntecedentController struct {
	Log               *zap.Logger
	AntecedentUsecase contracts.AntecedentUsecase
}

func NewAntecedentController(logger *zap.Logger, antecedentUsecase contracts.AntecedentUsecase) *AntecedentController {
	return &AntecedentController{
		Log:               logger,
		AntecedentUsecase: antecedentUsecase,
	}
}

func (ctrl *AntecedentController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	antecedentType := r.URL.Query().Get(constvars.URLQueryParamAntecedentType)
	result, err := ctrl.AntecedentUsecase.FindAll(ctx, antecedentType)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAntecedentsSuccess, result)
}

func (ctrl *AntecedentController) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := new(requests.CreateAntecedent)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.AntecedentUsecase.Create(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAntecedentSuccess, result)
}

func (ctrl *AntecedentController) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	antecedentID, err := parseAntecedentID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateAntecedent)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.AntecedentUsecase.Update(ctx, antecedentID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAntecedentSuccess, result)
}

func (ctrl *AntecedentController) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	antecedentID, err := parseAntecedentID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.AntecedentUsecase.Delete(ctx, antecedentID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAntecedentSuccess, nil)
}

func parseAntecedentID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, constvars.URLParamAntecedentID)
	antecedentID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, exceptions.ErrURLParamValidation(err, constvars.URLParamAntecedentID)
	}
	return antecedentID, nil
}
