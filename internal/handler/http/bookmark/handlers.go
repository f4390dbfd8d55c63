package bookmark

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"tourcatalog/internal/domain/entity"
	"tourcatalog/internal/handler/http/respond"
	bmUC "tourcatalog/internal/usecase/bookmark"
)

// visitorKeyHeader carries the opaque client-generated visitor identity.
// There is no account system; losing the key means losing the bookmarks.
const visitorKeyHeader = "X-Visitor-Key"

func visitorKey(r *http.Request) (string, error) {
	key := strings.TrimSpace(r.Header.Get(visitorKeyHeader))
	if key == "" {
		return "", errors.New(visitorKeyHeader + " header is required")
	}
	return key, nil
}

type ListHandler struct{ Svc *bmUC.Service }

// ServeHTTP returns the visitor's bookmarks, newest first.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key, err := visitorKey(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	bookmarks, err := h.Svc.List(r.Context(), key)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(bookmarks))
	for _, b := range bookmarks {
		dtos = append(dtos, toDTO(b))
	}
	respond.JSON(w, http.StatusOK, dtos)
}

type AddHandler struct{ Svc *bmUC.Service }

// ServeHTTP saves a bookmark for the visitor. Re-adding an existing bookmark
// succeeds without creating a duplicate.
func (h AddHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key, err := visitorKey(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		ContentID string `json:"contentId"`
		Title     string `json:"title"`
		Category  string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	b, err := h.Svc.Add(r.Context(), bmUC.AddInput{
		VisitorKey: key,
		ContentID:  req.ContentID,
		Title:      req.Title,
		Category:   req.Category,
	})
	if err != nil {
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(b))
}

type DeleteHandler struct{ Svc *bmUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key, err := visitorKey(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	err = h.Svc.Remove(r.Context(), key, r.PathValue("contentId"))
	if err != nil {
		switch {
		case errors.Is(err, bmUC.ErrBookmarkNotFound):
			respond.SafeError(w, http.StatusNotFound, err)
		case errors.Is(err, bmUC.ErrInvalidInput):
			respond.SafeError(w, http.StatusBadRequest, err)
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Register wires the bookmark endpoints into the given mux.
func Register(mux *http.ServeMux, svc *bmUC.Service) {
	mux.Handle("GET /bookmarks", ListHandler{svc})
	mux.Handle("POST /bookmarks", AddHandler{svc})
	mux.Handle("DELETE /bookmarks/{contentId}", DeleteHandler{svc})
}
