// Package settlementdelivery manages delivery layer of settlements.
package settlementdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-split/internal/domain"
	"github.com/go-petr/pet-split/pkg/errorspkg"
	"github.com/go-petr/pet-split/pkg/moneypkg"
	"github.com/go-petr/pet-split/pkg/web"
)

// Service provides service layer interface needed by settlement delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package settlementdelivery
type Service interface {
	Compute(ctx context.Context, entries []domain.Entry) (domain.SettlementPlan, error)
}

// Handler facilitates settlement delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns settlement handler.
func NewHandler(ss Service) *Handler {
	return &Handler{
		service: ss,
	}
}

type entryRequest struct {
	Name   string `json:"name" binding:"required"`
	Amount string `json:"amount" binding:"required,amount"`
}

type createRequest struct {
	Entries []entryRequest `json:"entries" binding:"required,min=1,dive"`
}

type data struct {
	Settlement domain.SettlementPlan `json:"settlement"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

func domainEntries(reqEntries []entryRequest) ([]domain.Entry, error) {
	entries := make([]domain.Entry, 0, len(reqEntries))

	for _, e := range reqEntries {
		amount, err := moneypkg.Parse(e.Amount)
		if err != nil {
			return nil, domain.ErrInvalidAmount
		}

		entries = append(entries, domain.Entry{Name: e.Name, Amount: amount})
	}

	return entries, nil
}

// Create handles http request to compute a settlement plan for a batch of entries.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	entries, err := domainEntries(req.Entries)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	plan, err := h.service.Compute(ctx, entries)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case
			domain.ErrNoEntries,
			domain.ErrEmptyName,
			domain.ErrInvalidAmount,
			domain.ErrNegativeAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		case domain.ErrInconsistentBalance:
			gctx.JSON(http.StatusInternalServerError, web.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{plan},
	}

	gctx.JSON(http.StatusOK, res)
}
