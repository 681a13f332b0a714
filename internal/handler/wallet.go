package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/vottun"
)

func (h *ServiceHandler) GetWallets(w http.ResponseWriter, r *http.Request) {
	resp, err := h.api.GetWallets(r.Context())
	h.respond(w, r, "GetWallets", resp, err)
}

func (h *ServiceHandler) GetWalletKeys(w http.ResponseWriter, r *http.Request) {
	resp, err := h.api.GetWalletKeys(r.Context())
	h.respond(w, r, "GetWalletKeys", resp, err)
}

func (h *ServiceHandler) GetWalletNfts(w http.ResponseWriter, r *http.Request) {
	req := &vottun.GetWalletNftsRequest{WalletAddress: chi.URLParam(r, "address")}
	resp, err := h.api.GetWalletNfts(r.Context(), req)
	h.respond(w, r, "GetWalletNfts", resp, err)
}
