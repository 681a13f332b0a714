package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vladislavprovich/nft-api-sdk/pkg/logger"
)

func NewRouter(handler Handler, log *slog.Logger, cfg *Config) *chi.Mux {
	mux := chi.NewRouter()

	mux.Use(chiMiddleware.Recoverer)
	mux.Use(chiMiddleware.Timeout(cfg.Timeout))

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Content-Type", "authorization"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           int(cfg.MaxAge),
	}))

	mux.Use(chiMiddleware.RequestID)
	mux.Use(chiMiddleware.RequestLogger(&chiMiddleware.DefaultLogFormatter{
		Logger:  &logger.Logger{Logger: log},
		NoColor: true,
	}))

	mux.Get("/health", handler.Health)

	mux.Route(fmt.Sprintf("/api/%s/nft", cfg.APIVersion), func(r chi.Router) {
		r.Get("/wallets", handler.GetWallets)
		r.Get("/wallet/keys", handler.GetWalletKeys)
		r.Get("/wallets/{address}/nfts", handler.GetWalletNfts)

		r.Get("/tokens/{tokenId}/info", handler.GetTokenInfo)
		r.Get("/tokens/{internalTokenId}/history", handler.GetTokenHistory)
		r.Get("/contracts/{contract}/tokens/{tokenId}", handler.GetNftInfo)
		r.Get("/contracts/{contract}/tokens/{tokenId}/owner", handler.GetTokenOwner)
		r.Get("/transactions/{txHash}", handler.GetTransactionInfo)

		r.Route("/webhook", func(r chi.Router) {
			r.Get("/", handler.GetWebhook)
			r.Post("/", handler.CreateWebhook)
			r.Put("/", handler.UpdateWebhook)
			r.Post("/test", handler.SendTestWebhook)
		})

		r.Get("/contracts", handler.GetUserContracts)
		r.Get("/balances", handler.GetAccountBalances)
		r.Get("/balance", handler.GetAccountBalance)
		r.Get("/gasprice", handler.GetGasPrice)
		r.Get("/fees/contracts/{contract}/{method}", handler.GetTransactionFees)
		r.Get("/contract-types", handler.GetContractTypes)
		r.Get("/networks", handler.GetNetworks)
		r.Get("/operations", handler.GetCustomerOperations)
		r.Get("/operations/{operationId}", handler.GetCustomerOperation)

		r.Post("/erc721/deploy", handler.DeployERC721Contract)
		r.Post("/nfts/mint", handler.MintNft)
		r.Post("/nfts/transfer", handler.TransferNft)

		r.Route("/poap", func(r chi.Router) {
			r.Post("/deploy", handler.DeployPoapContract)
			r.Post("/mint", handler.MintBatchPoap)
			r.Post("/transfer", handler.TransferPoap)
			r.Get("/contracts/{contract}/tokens/{tokenId}/uri", handler.GetPoapURI)
			r.Get("/owners/{owner}/contracts/{contract}/tokens/{tokenId}", handler.GetPoapInfo)
			r.Get("/owners/{owner}", handler.GetPoapsByOwner)
			r.Get("/balance", handler.BalanceOfPoap)
		})

		r.Route("/erc1155", func(r chi.Router) {
			r.Post("/deploy", handler.DeployERC1155Contract)
			r.Post("/mint", handler.MintBatchERC1155)
			r.Post("/transfer", handler.TransferERC1155)
			r.Get("/balance", handler.BalanceOfERC1155)
		})

		r.Post("/storage/files", handler.UploadFile)
		r.Post("/storage/metadata", handler.UploadMetadata)
	})

	return mux
}
