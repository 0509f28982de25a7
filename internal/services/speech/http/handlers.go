// Package http provides http transport for speech validation
package http

import (
	stdhttp "net/http"

	"soundcheck/internal/modkit/httpkit"
	"soundcheck/internal/services/speech/domain"
	svc "soundcheck/internal/services/speech/service"
)

// Register mounts the router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ValidateInput](r, "/validate", h.validate)
	httpkit.PostJSON[domain.EstimateInput](r, "/estimate", h.estimate)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /speech/validate Speech validate
// @Summary Validate an utterance against the speech duration budget
// @Description Returns the original text when it speaks within budget, otherwise a trimmed and summarized rewrite
// @Tags speech
// @Accept json
// @Produce json
// @Param payload body domain.ValidateInput true "Utterance"
// @Success 200 {object} domain.ValidateResult "ok"
// @Failure 400 {object} httpkit.Envelope "missing or empty text"
// @Router /speech/validate [post]
func (h *handlers) validate(r *stdhttp.Request, in domain.ValidateInput) (any, error) {
	return h.svc.Validate(r.Context(), in)
}

// swagger:route POST /speech/estimate Speech estimate
// @Summary Estimate spoken duration of an utterance
// @Tags speech
// @Accept json
// @Produce json
// @Param payload body domain.EstimateInput true "Utterance"
// @Success 200 {object} domain.EstimateResult "ok"
// @Router /speech/estimate [post]
func (h *handlers) estimate(r *stdhttp.Request, in domain.EstimateInput) (any, error) {
	return h.svc.Estimate(r.Context(), in)
}
