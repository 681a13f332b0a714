package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/unrolled/render"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/ipfs"
	"github.com/vladislavprovich/nft-api-sdk/pkg/client/transport"
	"github.com/vladislavprovich/nft-api-sdk/pkg/client/vottun"
	"github.com/vladislavprovich/nft-api-sdk/pkg/sdk"
)

type Handler interface {
	Health(w http.ResponseWriter, r *http.Request)

	GetWallets(w http.ResponseWriter, r *http.Request)
	GetWalletKeys(w http.ResponseWriter, r *http.Request)
	GetWalletNfts(w http.ResponseWriter, r *http.Request)

	GetTokenInfo(w http.ResponseWriter, r *http.Request)
	GetNftInfo(w http.ResponseWriter, r *http.Request)
	GetTokenOwner(w http.ResponseWriter, r *http.Request)
	GetTokenHistory(w http.ResponseWriter, r *http.Request)
	GetTransactionInfo(w http.ResponseWriter, r *http.Request)

	GetWebhook(w http.ResponseWriter, r *http.Request)
	CreateWebhook(w http.ResponseWriter, r *http.Request)
	UpdateWebhook(w http.ResponseWriter, r *http.Request)
	SendTestWebhook(w http.ResponseWriter, r *http.Request)

	GetUserContracts(w http.ResponseWriter, r *http.Request)
	GetAccountBalances(w http.ResponseWriter, r *http.Request)
	GetAccountBalance(w http.ResponseWriter, r *http.Request)
	GetGasPrice(w http.ResponseWriter, r *http.Request)
	GetTransactionFees(w http.ResponseWriter, r *http.Request)
	GetContractTypes(w http.ResponseWriter, r *http.Request)
	GetNetworks(w http.ResponseWriter, r *http.Request)
	GetCustomerOperations(w http.ResponseWriter, r *http.Request)
	GetCustomerOperation(w http.ResponseWriter, r *http.Request)

	DeployERC721Contract(w http.ResponseWriter, r *http.Request)
	MintNft(w http.ResponseWriter, r *http.Request)
	TransferNft(w http.ResponseWriter, r *http.Request)

	DeployPoapContract(w http.ResponseWriter, r *http.Request)
	MintBatchPoap(w http.ResponseWriter, r *http.Request)
	TransferPoap(w http.ResponseWriter, r *http.Request)
	GetPoapURI(w http.ResponseWriter, r *http.Request)
	GetPoapInfo(w http.ResponseWriter, r *http.Request)
	GetPoapsByOwner(w http.ResponseWriter, r *http.Request)
	BalanceOfPoap(w http.ResponseWriter, r *http.Request)

	DeployERC1155Contract(w http.ResponseWriter, r *http.Request)
	MintBatchERC1155(w http.ResponseWriter, r *http.Request)
	TransferERC1155(w http.ResponseWriter, r *http.Request)
	BalanceOfERC1155(w http.ResponseWriter, r *http.Request)

	UploadFile(w http.ResponseWriter, r *http.Request)
	UploadMetadata(w http.ResponseWriter, r *http.Request)
}

type ServiceHandler struct {
	api    sdk.API
	logger *slog.Logger
	cfg    *Config
	render *render.Render
}

var _ Handler = (*ServiceHandler)(nil)

func NewServiceHandler(api sdk.API, logger *slog.Logger, cfg *Config, render *render.Render) *ServiceHandler {
	return &ServiceHandler{
		api:    api,
		logger: logger,
		cfg:    cfg,
		render: render,
	}
}

var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error string `json:"error"`
}

func badRequest(err error) error {
	return fmt.Errorf("%w: %w", errBadRequest, err)
}

func (h *ServiceHandler) sendJSON(ctx context.Context, w io.Writer, status int, body any) {
	if err := h.render.JSON(w, status, body); err != nil {
		h.logger.ErrorContext(ctx, "render JSON error", slog.Any("error", err))
	}
}

// sendRaw passes a remote body through. Bodies that are not JSON go out as text.
func (h *ServiceHandler) sendRaw(ctx context.Context, w http.ResponseWriter, status int, body json.RawMessage) {
	if json.Valid(body) {
		h.sendJSON(ctx, w, status, body)
		return
	}
	if err := h.render.Text(w, status, string(body)); err != nil {
		h.logger.ErrorContext(ctx, "render text error", slog.Any("error", err))
	}
}

// sendError maps remote failures to the remote status, rejected input to 400
// and everything else to 502.
func (h *ServiceHandler) sendError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	if apiErr, ok := transport.AsAPIError(err); ok {
		h.logger.WarnContext(ctx, op+" remote error", slog.Int("status", apiErr.StatusCode), slog.Any("error", err))
		status := apiErr.StatusCode
		if status < http.StatusBadRequest || status > 599 {
			status = http.StatusBadGateway
		}
		if len(apiErr.Body) > 0 && json.Valid(apiErr.Body) {
			h.sendJSON(ctx, w, status, apiErr.Body)
			return
		}
		h.sendJSON(ctx, w, status, errorResponse{Error: apiErr.Error()})
		return
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) ||
		errors.Is(err, errBadRequest) ||
		errors.Is(err, vottun.ErrNilRequest) ||
		errors.Is(err, ipfs.ErrNilRequest) ||
		errors.Is(err, ipfs.ErrNilMetadata) {
		h.logger.WarnContext(ctx, op+" rejected request", slog.Any("error", err))
		h.sendJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	h.logger.ErrorContext(ctx, op+" error", slog.Any("error", err))
	h.sendJSON(ctx, w, http.StatusBadGateway, errorResponse{Error: err.Error()})
}

func (h *ServiceHandler) respond(w http.ResponseWriter, r *http.Request, op string, resp json.RawMessage, err error) {
	ctx := r.Context()
	if err != nil {
		h.sendError(ctx, w, op, err)
		return
	}
	h.sendRaw(ctx, w, http.StatusOK, resp)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return badRequest(fmt.Errorf("decode body: %w", err))
	}
	return nil
}

// queryInt64 returns zero for a missing key so request validation reports it.
func queryInt64(q url.Values, name string) (int64, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, badRequest(fmt.Errorf("query parameter %s: %q is not an integer", name, raw))
	}
	return v, nil
}

// parse runs each step and stops at the first error.
func parse(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func intQuery(q url.Values, name string, dst *int64) func() error {
	return func() (err error) {
		*dst, err = queryInt64(q, name)
		return err
	}
}

// tokenPath parses a uint256 token id from the route.
func tokenPath(r *http.Request, name string, dst *vottun.Uint256) func() error {
	return func() error {
		raw := chi.URLParam(r, name)
		v, err := vottun.ParseUint256(raw)
		if err != nil {
			return badRequest(fmt.Errorf("path parameter %s: %w", name, err))
		}
		*dst = v
		return nil
	}
}

// tokenQuery leaves dst empty for a missing key so request validation reports it.
func tokenQuery(q url.Values, name string, dst *vottun.Uint256) func() error {
	return func() error {
		raw := q.Get(name)
		if raw == "" {
			return nil
		}
		v, err := vottun.ParseUint256(raw)
		if err != nil {
			return badRequest(fmt.Errorf("query parameter %s: %w", name, err))
		}
		*dst = v
		return nil
	}
}
