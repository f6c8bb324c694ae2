package http

import (
	"net/http"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/service"
	"github.com/aussiebroadwan/seeka/pkg/banksdk"
	"github.com/aussiebroadwan/seeka/pkg/httpx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

// DecisionsHandler records and lists loan decisions. The list is newest
// first; the referenced user id is not required to exist.
type DecisionsHandler struct {
	Decisions *service.DecisionService
}

func (h *DecisionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	decisions, err := h.Decisions.List(ctx)
	if err != nil {
		log.Error("failed to list decisions", "err", err)
		banksdk.ErrServerError.WriteError(w)
		return
	}

	response := make([]banksdk.DecisionInfo, 0, len(decisions))
	for _, d := range decisions {
		response = append(response, toDecisionInfo(d))
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

func (h *DecisionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req banksdk.DecisionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.UserID == "" {
		banksdk.NewAPIError(http.StatusBadRequest,
			banksdk.ErrorCodeInvalidRequest, "userId is required").WriteError(w)
		return
	}

	jobType, err := domain.ParseJobType(req.JobType)
	if err != nil {
		banksdk.NewAPIError(http.StatusBadRequest,
			banksdk.ErrorCodeInvalidRequest, "jobType must be one of salaried, business, freelance, student, unemployed").WriteError(w)
		return
	}

	decision, err := h.Decisions.Record(ctx, domain.DecisionInput{
		UserID:      req.UserID,
		Income:      req.Income,
		LoanAmount:  req.LoanAmount,
		CreditScore: req.CreditScore,
		Age:         req.Age,
		JobType:     jobType,
		Approved:    req.Approved,
	})
	if err != nil {
		log.Error("failed to record decision", "err", err)
		banksdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toDecisionInfo(decision))
}
