package annotation

import (
	"errors"
	"net/http"

	"tourcatalog/internal/handler/http/respond"
	annUC "tourcatalog/internal/usecase/annotation"
)

type DeleteHandler struct{ Svc *annUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h.Svc.Remove(r.Context(), r.PathValue("contentId"))
	if err != nil {
		switch {
		case errors.Is(err, annUC.ErrInvalidContentID):
			respond.SafeError(w, http.StatusBadRequest, err)
		case errors.Is(err, annUC.ErrPolicyNotFound):
			respond.SafeError(w, http.StatusNotFound, err)
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
