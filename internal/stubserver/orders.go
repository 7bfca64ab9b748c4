package stubserver

import (
	"net/http"

	"restaurant-admin/internal/models"
)

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.listOrders())
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid order id")
		return
	}

	order, err := s.store.getOrder(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if ok := decodeJSON(w, r, &order); !ok {
		return
	}
	if order.CustomerID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_input", "customer is required")
		return
	}
	if _, err := s.store.getClient(order.CustomerID); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "customer does not exist")
		return
	}

	order.ID = 0
	writeJSON(w, http.StatusCreated, s.store.createOrder(order))
}

func (s *Server) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid order id")
		return
	}

	var order models.Order
	if ok := decodeJSON(w, r, &order); !ok {
		return
	}
	order.ID = id

	if order.Status != "" && !order.Status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid_input", "unknown order status")
		return
	}

	if err := s.store.updateOrder(order); err != nil {
		writeError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (s *Server) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid order id")
		return
	}

	status := models.OrderStatus(r.URL.Query().Get("status"))
	if !status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid_input", "unknown order status")
		return
	}

	if err := s.store.updateOrderStatus(id, status); err != nil {
		writeError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}

	order, _ := s.store.getOrder(id)
	writeJSON(w, http.StatusOK, order)
}

func (s *Server) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid order id")
		return
	}

	if err := s.store.deleteOrder(id); err != nil {
		writeError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) detailsForOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "orderID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid order id")
		return
	}

	if _, err := s.store.getOrder(id); err != nil {
		writeError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}

	details := s.store.detailsForOrder(id)
	if details == nil {
		details = []models.OrderDetail{}
	}
	writeJSON(w, http.StatusOK, details)
}

func (s *Server) createDetail(w http.ResponseWriter, r *http.Request) {
	var detail models.OrderDetail
	if ok := decodeJSON(w, r, &detail); !ok {
		return
	}
	if detail.OrderID <= 0 || detail.DishID <= 0 || detail.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_input", "order, dish and quantity are required")
		return
	}

	detail.ID = 0
	created, err := s.store.createDetail(detail)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) deleteDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid detail id")
		return
	}

	if err := s.store.deleteDetail(id); err != nil {
		writeError(w, http.StatusNotFound, "not_found", "order detail not found")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
