package annotation

import (
	"errors"
	"net/http"
	"strings"

	"tourcatalog/internal/common/pagination"
	"tourcatalog/internal/handler/http/respond"
	"tourcatalog/internal/repository"
	annUC "tourcatalog/internal/usecase/annotation"
)

type ListHandler struct {
	Svc           *annUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP lists stored policies, optionally scoped by areaCode, categories
// (CSV) and allowed (true/false). Results are paginated via page/limit.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	filter := repository.PetPolicyFilter{
		AreaCode: strings.TrimSpace(r.URL.Query().Get("areaCode")),
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("categories")); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				filter.Categories = append(filter.Categories, c)
			}
		}
	}

	switch allowed := r.URL.Query().Get("allowed"); allowed {
	case "":
	case "true":
		v := true
		filter.Allowed = &v
	case "false":
		v := false
		filter.Allowed = &v
	default:
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("allowed must be \"true\" or \"false\""))
		return
	}

	policies, err := h.Svc.List(r.Context(), filter)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	total := int64(len(policies))
	offset := pagination.CalculateOffset(params.Page, params.Limit)
	if offset > len(policies) {
		offset = len(policies)
	}
	end := offset + params.Limit
	if end > len(policies) {
		end = len(policies)
	}

	dtos := make([]DTO, 0, end-offset)
	for _, p := range policies[offset:end] {
		dtos = append(dtos, toDTO(p))
	}

	meta := pagination.Metadata{
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		HasMore:    int64(end) < total,
	}
	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, meta))
}
