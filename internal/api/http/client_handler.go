package http

import (
	"net/http"

	"rentamaq-backend/internal/domain"
	"rentamaq-backend/internal/service"
)

type ClientHandler struct {
	clientSvc service.ClientService
}

func NewClientHandler(clientSvc service.ClientService) *ClientHandler {
	return &ClientHandler{clientSvc: clientSvc}
}

type createClientRequest struct {
	Nombre          string `json:"nombre"`
	RucDni          string `json:"ruc_dni"`
	Email           string `json:"email"`
	Telefono        string `json:"telefono"`
	Direccion       string `json:"direccion"`
	PersonaContacto string `json:"persona_contacto"`
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	client := &domain.Client{
		Name:     req.Nombre,
		Document: req.RucDni,
		Email:    req.Email,
		Phone:    req.Telefono,
		Address:  req.Direccion,
		Contact:  req.PersonaContacto,
	}
	if err := h.clientSvc.CreateClient(r.Context(), client); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      client.ID,
		"mensaje": "Cliente creado exitosamente",
	})
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	client, err := h.clientSvc.GetClient(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientSvc.ListClients(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"clientes": clients})
}
