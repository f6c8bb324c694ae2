package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/service"
	"github.com/aussiebroadwan/seeka/pkg/banksdk"
	"github.com/aussiebroadwan/seeka/pkg/httpx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

// ExplanationsHandler asks the AI collaborator to explain a loan decision
// for a supplied applicant profile. Read-only; nothing is stored.
type ExplanationsHandler struct {
	Advisor *service.AdvisorService
}

func (h *ExplanationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req banksdk.ExplanationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	jobType, err := domain.ParseJobType(req.JobType)
	if err != nil {
		banksdk.NewAPIError(http.StatusBadRequest,
			banksdk.ErrorCodeInvalidRequest, "jobType must be one of salaried, business, freelance, student, unemployed").WriteError(w)
		return
	}

	explanation, err := h.Advisor.ExplainLoan(ctx, domain.Mirror{
		Income:      req.Income,
		LoanAmount:  req.LoanAmount,
		CreditScore: req.CreditScore,
		Age:         req.Age,
		JobType:     jobType,
	})
	if err != nil {
		if errors.Is(err, service.ErrGenerationFailed) {
			banksdk.ErrGenerationFailed.WriteError(w)
			return
		}
		log.Error("loan explanation failed", "err", err)
		banksdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, banksdk.ExplanationResponse{Explanation: explanation})
}
