package httptransport

import (
	"encoding/json"
	"net/http"

	"restomenu-be/internal/menu"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	items := h.menuSvc.ListItems(r.Context())
	writeJSON(w, http.StatusOK, menu.ToItemResponses(items))
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeIDError(w)
		return
	}

	item, err := h.menuSvc.GetItem(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, menu.ToItemResponse(item))
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var input menu.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBodyError(w)
		return
	}

	item, err := h.menuSvc.AddItem(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, menu.ToItemResponse(item))
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeIDError(w)
		return
	}

	var input menu.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBodyError(w)
		return
	}

	item, err := h.menuSvc.UpdateItem(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, menu.ToItemResponse(item))
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeIDError(w)
		return
	}

	if err := h.menuSvc.DeleteItem(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Item deleted"})
}

func (h *Handler) listMenuByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	items, err := h.menuSvc.ListByCategory(r.Context(), category)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, menu.ToItemResponses(items))
}
