package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/vottun"
)

// tokenRequest reads a token reference. The contract comes from the path when
// the route names it, otherwise from the contract query parameter.
func tokenRequest(r *http.Request) (*vottun.TokenRequest, error) {
	q := r.URL.Query()
	req := &vottun.TokenRequest{ContractAddress: chi.URLParam(r, "contract")}
	if req.ContractAddress == "" {
		req.ContractAddress = q.Get("contract")
	}

	err := parse(
		tokenPath(r, "tokenId", &req.TokenID),
		intQuery(q, "network", &req.Network),
	)
	return req, err
}

func (h *ServiceHandler) GetTokenInfo(w http.ResponseWriter, r *http.Request) {
	req, err := tokenRequest(r)
	if err != nil {
		h.sendError(r.Context(), w, "GetTokenInfo", err)
		return
	}
	resp, err := h.api.GetTokenInfo(r.Context(), req)
	h.respond(w, r, "GetTokenInfo", resp, err)
}

func (h *ServiceHandler) GetNftInfo(w http.ResponseWriter, r *http.Request) {
	req, err := tokenRequest(r)
	if err != nil {
		h.sendError(r.Context(), w, "GetNftInfo", err)
		return
	}
	resp, err := h.api.GetNftInfo(r.Context(), req)
	h.respond(w, r, "GetNftInfo", resp, err)
}

func (h *ServiceHandler) GetTokenOwner(w http.ResponseWriter, r *http.Request) {
	req, err := tokenRequest(r)
	if err != nil {
		h.sendError(r.Context(), w, "GetTokenOwner", err)
		return
	}
	resp, err := h.api.GetTokenOwner(r.Context(), req)
	h.respond(w, r, "GetTokenOwner", resp, err)
}

func (h *ServiceHandler) GetTokenHistory(w http.ResponseWriter, r *http.Request) {
	req := &vottun.GetTokenHistoryRequest{InternalTokenID: chi.URLParam(r, "internalTokenId")}
	resp, err := h.api.GetTokenHistory(r.Context(), req)
	h.respond(w, r, "GetTokenHistory", resp, err)
}

func (h *ServiceHandler) GetTransactionInfo(w http.ResponseWriter, r *http.Request) {
	req := &vottun.GetTransactionInfoRequest{TxHash: chi.URLParam(r, "txHash")}
	if err := parse(intQuery(r.URL.Query(), "network", &req.Network)); err != nil {
		h.sendError(r.Context(), w, "GetTransactionInfo", err)
		return
	}
	resp, err := h.api.GetTransactionInfo(r.Context(), req)
	h.respond(w, r, "GetTransactionInfo", resp, err)
}
