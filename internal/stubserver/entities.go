package stubserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"restaurant-admin/internal/models"
)

func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (s *Server) listClients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.listClients())
}

func (s *Server) getClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid client id")
		return
	}

	client, err := s.store.getClient(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "client not found")
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (s *Server) searchClients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.searchClients(r.URL.Query().Get("term")))
}

func (s *Server) createClient(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if ok := decodeJSON(w, r, &client); !ok {
		return
	}
	if client.FirstName == "" || client.LastName == "" {
		writeError(w, http.StatusBadRequest, "invalid_input", "first and last name are required")
		return
	}

	client.ID = 0
	writeJSON(w, http.StatusCreated, s.store.createClient(client))
}

func (s *Server) updateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid client id")
		return
	}

	var client models.Client
	if ok := decodeJSON(w, r, &client); !ok {
		return
	}
	client.ID = id

	if err := s.store.updateClient(client); err != nil {
		writeError(w, http.StatusNotFound, "not_found", "client not found")
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (s *Server) deleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid client id")
		return
	}

	if err := s.store.deleteClient(id); err != nil {
		writeError(w, http.StatusNotFound, "not_found", "client not found")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) listDishes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.listDishes())
}

func (s *Server) getDish(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid dish id")
		return
	}

	dish, err := s.store.getDish(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "dish not found")
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (s *Server) searchDishes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.searchDishes(r.URL.Query().Get("term")))
}

func (s *Server) createDish(w http.ResponseWriter, r *http.Request) {
	var dish models.Dish
	if ok := decodeJSON(w, r, &dish); !ok {
		return
	}
	if dish.Name == "" {
		writeError(w, http.StatusBadRequest, "invalid_input", "dish name is required")
		return
	}
	if dish.Price.IsNegative() {
		writeError(w, http.StatusBadRequest, "invalid_input", "price cannot be negative")
		return
	}

	dish.ID = 0
	writeJSON(w, http.StatusCreated, s.store.createDish(dish))
}

func (s *Server) updateDish(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid dish id")
		return
	}

	var dish models.Dish
	if ok := decodeJSON(w, r, &dish); !ok {
		return
	}
	dish.ID = id

	if err := s.store.updateDish(dish); err != nil {
		writeError(w, http.StatusNotFound, "not_found", "dish not found")
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (s *Server) deleteDish(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid dish id")
		return
	}

	if err := s.store.deleteDish(id); err != nil {
		writeError(w, http.StatusNotFound, "not_found", "dish not found")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) listEmployees(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.listEmployees())
}

func (s *Server) getEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid employee id")
		return
	}

	employee, err := s.store.getEmployee(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "employee not found")
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (s *Server) searchEmployees(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.searchEmployees(r.URL.Query().Get("term")))
}

func (s *Server) createEmployee(w http.ResponseWriter, r *http.Request) {
	var employee models.Employee
	if ok := decodeJSON(w, r, &employee); !ok {
		return
	}
	if employee.FirstName == "" || employee.LastName == "" || employee.Position == "" {
		writeError(w, http.StatusBadRequest, "invalid_input", "name and position are required")
		return
	}

	employee.ID = 0
	writeJSON(w, http.StatusCreated, s.store.createEmployee(employee))
}

func (s *Server) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid employee id")
		return
	}

	var employee models.Employee
	if ok := decodeJSON(w, r, &employee); !ok {
		return
	}
	employee.ID = id

	if err := s.store.updateEmployee(employee); err != nil {
		writeError(w, http.StatusNotFound, "not_found", "employee not found")
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (s *Server) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid employee id")
		return
	}

	if err := s.store.deleteEmployee(id); err != nil {
		writeError(w, http.StatusNotFound, "not_found", "employee not found")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
