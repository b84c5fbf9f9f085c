package http

import (
	"net/http"

	"rentamaq-backend/internal/security"
	"rentamaq-backend/internal/service"

	"github.com/gorilla/mux"
)

type Services struct {
	Contract  service.ContractService
	Payment   service.PaymentService
	Equipment service.EquipmentService
	Client    service.ClientService
	Numbering service.NumberingService
}

// NewRouter builds the admin-console API. Everything under /api/v1 requires
// a valid bearer token; /healthz does not.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware, LoggingMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tokens))

	contracts := NewContractHandler(svcs.Contract, svcs.Numbering)
	api.HandleFunc("/arriendos", contracts.Create).Methods(http.MethodPost)
	api.HandleFunc("/arriendos", contracts.List).Methods(http.MethodGet)
	api.HandleFunc("/arriendos/numero", contracts.GenerateNumber).Methods(http.MethodPost)
	api.HandleFunc("/arriendos/cotizar", contracts.Quote).Methods(http.MethodPost)
	api.HandleFunc("/arriendos/{id:[0-9]+}", contracts.Get).Methods(http.MethodGet)
	api.HandleFunc("/arriendos/{id:[0-9]+}/estado", contracts.ChangeStatus).Methods(http.MethodPut)

	payments := NewPaymentHandler(svcs.Payment, svcs.Numbering)
	api.HandleFunc("/pagos", payments.Register).Methods(http.MethodPost)
	api.HandleFunc("/pagos/numero", payments.GenerateNumber).Methods(http.MethodPost)
	api.HandleFunc("/pagos/{id:[0-9]+}/confirmar", payments.Confirm).Methods(http.MethodPut)
	api.HandleFunc("/pagos/{id:[0-9]+}/anular", payments.Void).Methods(http.MethodPut)
	api.HandleFunc("/pagos/{id:[0-9]+}", payments.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/arriendos/{id:[0-9]+}/pagos", payments.ListByContract).Methods(http.MethodGet)

	equipment := NewEquipmentHandler(svcs.Equipment, svcs.Numbering)
	api.HandleFunc("/equipos", equipment.Create).Methods(http.MethodPost)
	api.HandleFunc("/equipos", equipment.List).Methods(http.MethodGet)
	api.HandleFunc("/equipos/codigo", equipment.GenerateCode).Methods(http.MethodPost)
	api.HandleFunc("/equipos/{id:[0-9]+}", equipment.Get).Methods(http.MethodGet)

	clients := NewClientHandler(svcs.Client)
	api.HandleFunc("/clientes", clients.Create).Methods(http.MethodPost)
	api.HandleFunc("/clientes", clients.List).Methods(http.MethodGet)
	api.HandleFunc("/clientes/{id:[0-9]+}", clients.Get).Methods(http.MethodGet)

	return r
}
