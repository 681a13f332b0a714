package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/vottun"
)

func (h *ServiceHandler) GetUserContracts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.api.GetUserContracts(r.Context())
	h.respond(w, r, "GetUserContracts", resp, err)
}

func (h *ServiceHandler) GetAccountBalances(w http.ResponseWriter, r *http.Request) {
	resp, err := h.api.GetAccountBalances(r.Context())
	h.respond(w, r, "GetAccountBalances", resp, err)
}

func (h *ServiceHandler) GetAccountBalance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &vottun.GetAccountBalanceRequest{WalletAddress: q.Get("wallet")}
	if err := parse(intQuery(q, "network", &req.NetworkID)); err != nil {
		h.sendError(r.Context(), w, "GetAccountBalance", err)
		return
	}
	resp, err := h.api.GetAccountBalance(r.Context(), req)
	h.respond(w, r, "GetAccountBalance", resp, err)
}

func (h *ServiceHandler) GetGasPrice(w http.ResponseWriter, r *http.Request) {
	req := &vottun.NetworkRequest{}
	if err := parse(intQuery(r.URL.Query(), "network", &req.Network)); err != nil {
		h.sendError(r.Context(), w, "GetGasPrice", err)
		return
	}
	resp, err := h.api.GetGasPrice(r.Context(), req)
	h.respond(w, r, "GetGasPrice", resp, err)
}

func (h *ServiceHandler) GetTransactionFees(w http.ResponseWriter, r *http.Request) {
	req := &vottun.GetTransactionFeesRequest{
		ContractAddress: chi.URLParam(r, "contract"),
		Method:          chi.URLParam(r, "method"),
	}
	if err := parse(intQuery(r.URL.Query(), "network", &req.Network)); err != nil {
		h.sendError(r.Context(), w, "GetTransactionFees", err)
		return
	}
	resp, err := h.api.GetTransactionFees(r.Context(), req)
	h.respond(w, r, "GetTransactionFees", resp, err)
}

func (h *ServiceHandler) GetContractTypes(w http.ResponseWriter, r *http.Request) {
	resp, err := h.api.GetContractTypes(r.Context())
	h.respond(w, r, "GetContractTypes", resp, err)
}

func (h *ServiceHandler) GetNetworks(w http.ResponseWriter, r *http.Request) {
	resp, err := h.api.GetNetworks(r.Context())
	h.respond(w, r, "GetNetworks", resp, err)
}

func (h *ServiceHandler) GetCustomerOperations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var index, quantity int64
	if err := parse(intQuery(q, "index", &index), intQuery(q, "quantity", &quantity)); err != nil {
		h.sendError(r.Context(), w, "GetCustomerOperations", err)
		return
	}
	req := &vottun.GetCustomerOperationsRequest{Index: int(index), Quantity: int(quantity)}
	resp, err := h.api.GetCustomerOperations(r.Context(), req)
	h.respond(w, r, "GetCustomerOperations", resp, err)
}

func (h *ServiceHandler) GetCustomerOperation(w http.ResponseWriter, r *http.Request) {
	req := &vottun.GetCustomerOperationRequest{OperationID: chi.URLParam(r, "operationId")}
	resp, err := h.api.GetCustomerOperation(r.Context(), req)
	h.respond(w, r, "GetCustomerOperation", resp, err)
}
