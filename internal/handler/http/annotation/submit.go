package annotation

import (
	"encoding/json"
	"errors"
	"net/http"

	"tourcatalog/internal/domain/entity"
	"tourcatalog/internal/handler/http/respond"
	annUC "tourcatalog/internal/usecase/annotation"
)

type SubmitHandler struct{ Svc *annUC.Service }

// ServeHTTP stores or replaces the pet policy for a place. Submissions are
// idempotent per content ID: a repeat submission overwrites the prior record.
func (h SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ContentID string `json:"contentId"`
		Allowed   bool   `json:"allowed"`
		SizeClass int    `json:"sizeClass"`
		MaxCount  int    `json:"maxCount"`
		Notes     string `json:"notes"`
		Category  string `json:"category"`
		AreaCode  string `json:"areaCode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.ContentID == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("contentId is required"))
		return
	}

	policy, err := h.Svc.Submit(r.Context(), annUC.SubmitInput{
		ContentID: req.ContentID,
		Allowed:   req.Allowed,
		SizeClass: req.SizeClass,
		MaxCount:  req.MaxCount,
		Notes:     req.Notes,
		Category:  req.Category,
		AreaCode:  req.AreaCode,
	})
	if err != nil {
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) || errors.Is(err, annUC.ErrInvalidContentID) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(policy))
}
