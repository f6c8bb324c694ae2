package http

import (
	"net/http"

	"github.com/aussiebroadwan/seeka/internal/bank/service"
	"github.com/aussiebroadwan/seeka/pkg/banksdk"
	"github.com/aussiebroadwan/seeka/pkg/httpx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

// FairnessHandler exposes the fairness report and the bias scan counter.
// Metrics are recomputed from the live decision set on every request.
type FairnessHandler struct {
	Fairness *service.FairnessService
}

// HandleMetrics returns the fairness report, 204 when no decisions exist.
func (h *FairnessHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	metrics, err := h.Fairness.Metrics(ctx)
	if err != nil {
		log.Error("failed to compute fairness metrics", "err", err)
		banksdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	if metrics == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toFairnessMetrics(*metrics))
}

// HandleRunScan executes a bias scan and returns the updated counter.
func (h *FairnessHandler) HandleRunScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	count, err := h.Fairness.RunScan(ctx)
	if err != nil {
		log.Error("bias scan failed", "err", err)
		banksdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, banksdk.ScanResponse{ScanCount: count})
}

// HandleScanCount reports how many bias scans have run this process.
func (h *FairnessHandler) HandleScanCount(w http.ResponseWriter, r *http.Request) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, banksdk.ScanResponse{ScanCount: h.Fairness.ScanCount()})
}
