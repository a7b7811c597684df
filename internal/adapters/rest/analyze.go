package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/ewilliams-labs/moodmix/internal/core/domain"
	"github.com/ewilliams-labs/moodmix/internal/logging"
)

const multipartMemory = 8 << 20

type cardResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Artists    string `json:"artists"`
	ImageURL   string `json:"image_url"`
	PreviewURL string `json:"preview_url"`
}

type analyzeResponse struct {
	Mood     string         `json:"mood"`
	Language string         `json:"language"`
	Tracks   []cardResponse `json:"tracks"`
	Embeds   []string       `json:"embeds"`
	Warning  string         `json:"warning,omitempty"`
	Color    string         `json:"color,omitempty"`
}

// Analyze handles POST /api/analyze with a multipart "image" file and an
// optional "language" field. Catalog failures never produce a 5xx here.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "image too large")
			return
		}
		writeError(w, http.StatusBadRequest, "expected multipart/form-data with an image field")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("read upload")
		writeError(w, http.StatusBadRequest, "could not read image")
		return
	}

	result := h.svc.Analyze(r.Context(), data, r.FormValue("language"))
	writeJSON(w, http.StatusOK, toAnalyzeResponse(result))
}

func toAnalyzeResponse(a domain.Analysis) analyzeResponse {
	cards := make([]cardResponse, 0, len(a.Tracks))
	for _, c := range a.Tracks {
		cards = append(cards, cardResponse{
			ID:         c.ID,
			Name:       c.Name,
			Artists:    c.Artists,
			ImageURL:   c.ImageURL,
			PreviewURL: c.PreviewURL,
		})
	}
	embeds := a.Embeds
	if embeds == nil {
		embeds = []string{}
	}
	return analyzeResponse{
		Mood:     a.Mood.String(),
		Language: a.Language.String(),
		Tracks:   cards,
		Embeds:   embeds,
		Warning:  a.Warning,
		Color:    a.Color,
	}
}
