package http

import (
	"net/http"

	"rentamaq-backend/internal/domain"
	"rentamaq-backend/internal/service"

	"github.com/shopspring/decimal"
)

type EquipmentHandler struct {
	equipmentSvc service.EquipmentService
	numberingSvc service.NumberingService
}

func NewEquipmentHandler(equipmentSvc service.EquipmentService, numberingSvc service.NumberingService) *EquipmentHandler {
	return &EquipmentHandler{equipmentSvc: equipmentSvc, numberingSvc: numberingSvc}
}

type createEquipmentRequest struct {
	Nombre       string          `json:"nombre"`
	Categoria    string          `json:"categoria"`
	Marca        string          `json:"marca"`
	Modelo       string          `json:"modelo"`
	NumeroSerie  string          `json:"numero_serie"`
	PrecioDia    decimal.Decimal `json:"precio_dia"`
	PrecioSemana decimal.Decimal `json:"precio_semana"`
	PrecioMes    decimal.Decimal `json:"precio_mes"`
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEquipmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	eq := &domain.Equipment{
		Name:          req.Nombre,
		Category:      req.Categoria,
		Brand:         req.Marca,
		Model:         req.Modelo,
		SerialNumber:  req.NumeroSerie,
		PricePerDay:   req.PrecioDia,
		PricePerWeek:  req.PrecioSemana,
		PricePerMonth: req.PrecioMes,
	}
	if err := h.equipmentSvc.AddEquipment(r.Context(), eq); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      eq.ID,
		"codigo":  eq.Code,
		"mensaje": "Equipo registrado exitosamente",
	})
}

func (h *EquipmentHandler) GenerateCode(w http.ResponseWriter, r *http.Request) {
	codigo, err := h.numberingSvc.GenerateEquipmentCode(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"codigo": codigo})
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	eq, err := h.equipmentSvc.GetEquipment(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.equipmentSvc.ListEquipment(r.Context(), r.URL.Query().Get("estado"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"equipos": items})
}
