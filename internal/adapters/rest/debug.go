package rest

import (
	"net/http"

	"github.com/ewilliams-labs/moodmix/internal/logging"
)

type debugResponse struct {
	OK            bool     `json:"ok"`
	GotToken      bool     `json:"got_token"`
	FeaturedCount int      `json:"featured_count"`
	Sample        []string `json:"sample"`
}

type debugErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// DebugSpotify handles GET /debug/spotify. It reports raw catalog failures with a 500.
func (h *Handler) DebugSpotify(w http.ResponseWriter, r *http.Request) {
	report, err := h.diag.Diagnose(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("spotify diagnostics failed")
		writeJSON(w, http.StatusInternalServerError, debugErrorResponse{OK: false, Error: err.Error()})
		return
	}

	sample := report.Sample
	if sample == nil {
		sample = []string{}
	}
	writeJSON(w, http.StatusOK, debugResponse{
		OK:            true,
		GotToken:      report.GotToken,
		FeaturedCount: len(sample),
		Sample:        sample,
	})
}
