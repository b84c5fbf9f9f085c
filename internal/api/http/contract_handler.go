package http

import (
	"net/http"
	"strconv"

	"rentamaq-backend/internal/domain"
	"rentamaq-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type ContractHandler struct {
	contractSvc  service.ContractService
	numberingSvc service.NumberingService
}

func NewContractHandler(contractSvc service.ContractService, numberingSvc service.NumberingService) *ContractHandler {
	return &ContractHandler{contractSvc: contractSvc, numberingSvc: numberingSvc}
}

type contractItemRequest struct {
	EquipoID       int32            `json:"equipo_id"`
	Cantidad       int32            `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
	CantidadTiempo *int32           `json:"cantidad_tiempo,omitempty"`
	UnidadTiempo   string           `json:"unidad_tiempo,omitempty"`
}

type createContractRequest struct {
	ClienteID           int32                 `json:"cliente_id"`
	FechaInicio         string                `json:"fecha_inicio"`
	FechaFinEstimada    string                `json:"fecha_fin_estimada"`
	TipoArriendo        string                `json:"tipo_arriendo"`
	Modalidad           string                `json:"modalidad"`
	Items               []contractItemRequest `json:"items"`
	LugarEntrega        string                `json:"lugar_entrega"`
	LugarDevolucion     string                `json:"lugar_devolucion"`
	IncluyeTransporte   bool                  `json:"incluye_transporte"`
	CostoTransporte     decimal.Decimal       `json:"costo_transporte"`
	IncluyeOperador     bool                  `json:"incluye_operador"`
	CostoOperador       decimal.Decimal       `json:"costo_operador"`
	DescuentoPorcentaje decimal.Decimal       `json:"descuento_porcentaje"`
	Observaciones       string                `json:"observaciones"`
}

func (req *createContractRequest) toService() *service.CreateContractRequest {
	lines := make([]service.CreateContractLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, service.CreateContractLine{
			EquipmentID:         it.EquipoID,
			Quantity:            it.Cantidad,
			UnitPriceOverride:   it.PrecioUnitario,
			PeriodCountOverride: it.CantidadTiempo,
			PeriodUnitOverride:  domain.PeriodUnit(it.UnidadTiempo),
		})
	}
	return &service.CreateContractRequest{
		ClientID:          req.ClienteID,
		StartDate:         req.FechaInicio,
		EndDate:           req.FechaFinEstimada,
		RatePlan:          domain.RatePlan(req.TipoArriendo),
		Modality:          domain.Modality(req.Modalidad),
		Lines:             lines,
		DeliveryAddress:   req.LugarEntrega,
		ReturnAddress:     req.LugarDevolucion,
		IncludesTransport: req.IncluyeTransporte,
		TransportFee:      req.CostoTransporte,
		IncludesOperator:  req.IncluyeOperador,
		OperatorFee:       req.CostoOperador,
		DiscountPercent:   req.DescuentoPorcentaje,
		Notes:             req.Observaciones,
	}
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContractRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	contract, err := h.contractSvc.CreateContract(r.Context(), req.toService())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":              contract.ID,
		"numero_contrato": contract.Number,
		"mensaje":         "Contrato creado exitosamente",
	})
}

func (h *ContractHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req createContractRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	quote, err := h.contractSvc.QuoteContract(r.Context(), req.toService())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dias_totales": quote.TotalDays,
		"items":        quote.Lines,
		"subtotal":     quote.Totals.Subtotal,
		"descuento":    quote.Totals.Discount,
		"igv":          quote.Totals.Tax,
		"total":        quote.Totals.Total,
	})
}

func (h *ContractHandler) GenerateNumber(w http.ResponseWriter, r *http.Request) {
	numero, err := h.numberingSvc.GenerateContractNumber(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"numero": numero})
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	contract, lines, err := h.contractSvc.GetContract(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"arriendo": contract,
		"items":    lines,
	})
}

func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := queryInt32(q.Get("page"), 1)
	pageSize := queryInt32(q.Get("page_size"), 20)

	contracts, total, err := h.contractSvc.ListContracts(r.Context(), q.Get("estado"), page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"arriendos": contracts,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

type changeStatusRequest struct {
	Estado string `json:"estado"`
}

func (h *ContractHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	var req changeStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	contract, err := h.contractSvc.ChangeStatus(r.Context(), id, domain.ContractStatus(req.Estado))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract)
}

func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return int32(id), nil
}

func queryInt32(raw string, fallback int32) int32 {
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 1 {
		return fallback
	}
	return int32(n)
}
