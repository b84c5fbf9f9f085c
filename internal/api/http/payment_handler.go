package http

import (
	"net/http"

	"rentamaq-backend/internal/domain"
	"rentamaq-backend/internal/service"

	"github.com/shopspring/decimal"
)

type PaymentHandler struct {
	paymentSvc   service.PaymentService
	numberingSvc service.NumberingService
}

func NewPaymentHandler(paymentSvc service.PaymentService, numberingSvc service.NumberingService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc, numberingSvc: numberingSvc}
}

type registerPaymentRequest struct {
	ArriendoID int32           `json:"arriendo_id"`
	Monto      decimal.Decimal `json:"monto"`
	Metodo     string          `json:"metodo"`
	Referencia string          `json:"referencia"`
	FechaPago  string          `json:"fecha_pago"`
}

func (h *PaymentHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerPaymentRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	payment, err := h.paymentSvc.RegisterPayment(r.Context(), &service.RegisterPaymentRequest{
		ContractID: req.ArriendoID,
		Amount:     req.Monto,
		Method:     domain.PaymentMethod(req.Metodo),
		Reference:  req.Referencia,
		PaidOn:     req.FechaPago,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":          payment.ID,
		"numero_pago": payment.Number,
		"mensaje":     "Pago registrado exitosamente",
	})
}

func (h *PaymentHandler) GenerateNumber(w http.ResponseWriter, r *http.Request) {
	numero, err := h.numberingSvc.GeneratePaymentNumber(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"numero": numero})
}

func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	payment, err := h.paymentSvc.ConfirmPayment(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) Void(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	payment, err := h.paymentSvc.VoidPayment(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	if err := h.paymentSvc.DeletePayment(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"mensaje": "Pago eliminado"})
}

func (h *PaymentHandler) ListByContract(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	payments, err := h.paymentSvc.ListPayments(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"pagos": payments})
}
