package httptransport

import (
	"encoding/json"
	"net/http"

	"restomenu-be/internal/order"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.orderSvc.ListOrders(r.Context())
	writeJSON(w, http.StatusOK, order.ToOrderResponses(orders))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeIDError(w)
		return
	}

	o, err := h.orderSvc.GetOrder(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, order.ToOrderResponse(o))
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var input order.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBodyError(w)
		return
	}

	o, err := h.orderSvc.CreateOrder(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, order.ToOrderResponse(o))
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeIDError(w)
		return
	}

	var input order.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBodyError(w)
		return
	}

	o, err := h.orderSvc.UpdateOrder(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, order.ToOrderResponse(o))
}
