package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/exemplar/itemsvc/internal/api/rest/dto"
	"github.com/exemplar/itemsvc/internal/models"
	"github.com/exemplar/itemsvc/internal/service"
	"github.com/exemplar/itemsvc/internal/serviceerr"
)

type ItemHandler struct {
	service *service.Service
}

func NewItemHandler(svc *service.Service) *ItemHandler {
	return &ItemHandler{service: svc}
}

func (h *ItemHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	params := service.ListItemsParams{Page: parsePageRequest(r)}

	if s := r.URL.Query().Get("status"); s != "" {
		status, err := models.ParseItemStatus(s)
		if err != nil {
			writeServiceError(w, r, serviceerr.InvalidRequest(err.Error()))
			return
		}
		params.Status = &status
	}
	if search := r.URL.Query().Get("search"); search != "" {
		params.Search = &search
	}

	page, err := h.service.List(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListItemsResponse{
		Items:         dto.ItemsToResponse(page.Items),
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		CurrentPage:   page.CurrentPage,
		PageSize:      page.PageSize,
		HasNext:       page.HasNext,
		HasPrevious:   page.HasPrevious,
		NextPage:      page.NextPage,
		PreviousPage:  page.PreviousPage,
	})
}

func (h *ItemHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, serviceerr.InvalidRequest("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, r, serviceerr.ValidationError(err.Error()))
		return
	}

	params := service.CreateItemParams{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Status != "" {
		status, _ := models.ParseItemStatus(req.Status)
		params.Status = status
	}

	item, err := h.service.Create(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ItemToResponse(item))
}

func (h *ItemHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ItemToResponse(item))
}

func (h *ItemHandler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, serviceerr.InvalidRequest("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, r, serviceerr.ValidationError(err.Error()))
		return
	}

	item, err := h.service.Update(r.Context(), id, req.Version, req.ToUpdate())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ItemToResponse(item))
}

func (h *ItemHandler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
