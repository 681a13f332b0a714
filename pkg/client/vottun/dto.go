package vottun

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type (
	// TokenRequest addresses one token of one contract on a network.
	TokenRequest struct {
		ContractAddress string  `json:"contractAddress"`
		TokenID         Uint256 `json:"tokenId"`
		Network         int64   `json:"network"`
	}

	GetWalletNftsRequest struct {
		WalletAddress string `json:"walletAddress"`
	}

	GetTokenHistoryRequest struct {
		InternalTokenID string `json:"internalTokenId"`
	}

	GetAccountBalanceRequest struct {
		WalletAddress string `json:"walletAddress"`
		NetworkID     int64  `json:"networkId"`
	}

	GetTransactionInfoRequest struct {
		TxHash  string `json:"txHash"`
		Network int64  `json:"network"`
	}

	NetworkRequest struct {
		Network int64 `json:"network"`
	}

	GetDeploymentFeesRequest struct {
		ContractAddress string `json:"contractAddress"`
		Network         int64  `json:"network"`
	}

	GetTransactionFeesRequest struct {
		ContractAddress string `json:"contractAddress"`
		Method          string `json:"method"`
		Network         int64  `json:"network"`
	}

	GetCustomerOperationsRequest struct {
		Index    int `json:"index"`
		Quantity int `json:"quantity"`
	}

	GetCustomerOperationRequest struct {
		OperationID string `json:"operationId"`
	}
)

type WebhookRequest struct {
	URL string `json:"url"`
}

type (
	DeployERC721ContractRequest struct {
		Name              string `json:"name"`
		Symbol            string `json:"symbol"`
		BlockchainNetwork int64  `json:"blockchainNetwork"`
		GasLimit          uint64 `json:"gasLimit"`
	}

	MintNftRequest struct {
		RecipientAddress  string `json:"recipientAddress"`
		IPFSURI           string `json:"ipfsUri"`
		IPFSHash          string `json:"ipfsHash,omitempty"`
		BlockchainNetwork int64  `json:"blockchainNetwork"`
		ContractAddress   string `json:"contractAddress"`
		RoyaltyPercentage *int   `json:"royaltyPercentage,omitempty"`
	}

	TransferNftRequest struct {
		ContractAddress   string   `json:"contractAddress"`
		From              string   `json:"from"`
		To                string   `json:"to"`
		TokenID           Uint256  `json:"tokenId"`
		Price             *float64 `json:"price,omitempty"`
		BlockchainNetwork int64    `json:"blockchainNetwork"`
	}
)

type (
	DeployPoapContractRequest struct {
		To                string    `json:"to"`
		BlockchainNetwork int64     `json:"blockchainNetwork"`
		GasLimit          uint64    `json:"gasLimit"`
		TokenURI          string    `json:"tokenUri"`
		Quantities        []Uint256 `json:"quantities"`
		Tokens            []Uint256 `json:"tokens"`
		Alias             string    `json:"alias,omitempty"`
	}

	// MintBatchRequest mints several ids at once on a POAP or ERC1155 contract.
	MintBatchRequest struct {
		Contract          string    `json:"contract"`
		RecipientAddress  string    `json:"recipientAddress"`
		IDs               []Uint256 `json:"ids"`
		Quantities        []Uint256 `json:"quantities"`
		BlockchainNetwork int64     `json:"blockchainNetwork"`
	}

	TransferPoapRequest struct {
		Contract          string    `json:"contract"`
		From              string    `json:"from"`
		To                string    `json:"to"`
		IDs               []Uint256 `json:"ids"`
		BlockchainNetwork int64     `json:"blockchainNetwork"`
	}

	GetPoapInfoRequest struct {
		OwnerAddress    string  `json:"ownerAddress"`
		ContractAddress string  `json:"contractAddress"`
		TokenID         Uint256 `json:"tokenId"`
		Network         int64   `json:"network"`
	}

	GetPoapsByOwnerRequest struct {
		OwnerAddress string `json:"ownerAddress"`
	}

	// BalanceOfRequest is sent as a JSON body on a GET; Network travels in the query.
	BalanceOfRequest struct {
		ContractAddress string  `json:"contractAddress"`
		OwnerAddress    string  `json:"ownerAddress"`
		TokenID         Uint256 `json:"tokenID"`
		Network         int64   `json:"-"`
	}
)

type (
	DeployERC1155ContractRequest struct {
		Name              string    `json:"name"`
		BlockchainNetwork int64     `json:"blockchainNetwork"`
		GasLimit          uint64    `json:"gasLimit"`
		TokenURI          string    `json:"tokenUri"`
		IDs               []Uint256 `json:"ids"`
		Quantities        []Uint256 `json:"quantities"`
		RoyaltyRecipient  string    `json:"royaltyRecipient,omitempty"`
		RoyaltyPercentage *int      `json:"royaltyPercentage,omitempty"`
		Alias             string    `json:"alias,omitempty"`
	}

	TransferERC1155Request struct {
		Contract          string    `json:"contract"`
		From              string    `json:"from"`
		To                string    `json:"to"`
		IDs               []Uint256 `json:"ids"`
		Quantities        []Uint256 `json:"quantities"`
		BlockchainNetwork int64     `json:"blockchainNetwork"`
	}
)

func (r *TokenRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ContractAddress, validation.Required),
		validation.Field(&r.TokenID, tokenID...),
		validation.Field(&r.Network, network...),
	)
}

func (r *GetWalletNftsRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.WalletAddress, validation.Required),
	)
}

func (r *GetTokenHistoryRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.InternalTokenID, validation.Required),
	)
}

func (r *GetAccountBalanceRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.WalletAddress, validation.Required, evmAddress),
		validation.Field(&r.NetworkID, network...),
	)
}

func (r *GetTransactionInfoRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.TxHash, validation.Required),
		validation.Field(&r.Network, network...),
	)
}

func (r *NetworkRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Network, network...),
	)
}

func (r *GetDeploymentFeesRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ContractAddress, validation.Required),
		validation.Field(&r.Network, network...),
	)
}

func (r *GetTransactionFeesRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ContractAddress, validation.Required),
		validation.Field(&r.Method, validation.Required),
		validation.Field(&r.Network, network...),
	)
}

func (r *GetCustomerOperationsRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Index, validation.Min(0)),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1)),
	)
}

func (r *GetCustomerOperationRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.OperationID, validation.Required),
	)
}

func (r *WebhookRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.URL, validation.Required, is.URL),
	)
}

func (r *DeployERC721ContractRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Symbol, validation.Required),
		validation.Field(&r.BlockchainNetwork, network...),
		validation.Field(&r.GasLimit, validation.Required),
	)
}

func (r *MintNftRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.RecipientAddress, validation.Required, evmAddress),
		validation.Field(&r.IPFSURI, validation.Required, absoluteURI),
		validation.Field(&r.IPFSHash, contentID),
		validation.Field(&r.BlockchainNetwork, network...),
		validation.Field(&r.ContractAddress, validation.Required, evmAddress),
		validation.Field(&r.RoyaltyPercentage, validation.Min(0), validation.Max(100)),
	)
}

func (r *TransferNftRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ContractAddress, validation.Required, evmAddress),
		validation.Field(&r.From, validation.Required, evmAddress),
		validation.Field(&r.To, validation.Required, evmAddress),
		validation.Field(&r.TokenID, tokenID...),
		validation.Field(&r.Price, validation.Min(float64(0))),
		validation.Field(&r.BlockchainNetwork, network...),
	)
}

func (r *DeployPoapContractRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.To, validation.Required, evmAddress),
		validation.Field(&r.BlockchainNetwork, network...),
		validation.Field(&r.GasLimit, validation.Required),
		validation.Field(&r.TokenURI, validation.Required),
		validation.Field(&r.Tokens, tokenIDs...),
		validation.Field(&r.Quantities, quantities(len(r.Tokens))...),
	)
}

func (r *MintBatchRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Contract, validation.Required, evmAddress),
		validation.Field(&r.RecipientAddress, validation.Required, evmAddress),
		validation.Field(&r.IDs, tokenIDs...),
		validation.Field(&r.Quantities, quantities(len(r.IDs))...),
		validation.Field(&r.BlockchainNetwork, network...),
	)
}

func (r *TransferPoapRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Contract, validation.Required, evmAddress),
		validation.Field(&r.From, validation.Required, evmAddress),
		validation.Field(&r.To, validation.Required, evmAddress),
		validation.Field(&r.IDs, tokenIDs...),
		validation.Field(&r.BlockchainNetwork, network...),
	)
}

func (r *GetPoapInfoRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.OwnerAddress, validation.Required),
		validation.Field(&r.ContractAddress, validation.Required),
		validation.Field(&r.TokenID, tokenID...),
		validation.Field(&r.Network, network...),
	)
}

func (r *GetPoapsByOwnerRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.OwnerAddress, validation.Required),
	)
}

func (r *BalanceOfRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.ContractAddress, validation.Required, evmAddress),
		validation.Field(&r.OwnerAddress, validation.Required, evmAddress),
		validation.Field(&r.TokenID, tokenID...),
		validation.Field(&r.Network, network...),
	)
}

func (r *DeployERC1155ContractRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.BlockchainNetwork, network...),
		validation.Field(&r.GasLimit, validation.Required),
		validation.Field(&r.TokenURI, validation.Required),
		validation.Field(&r.IDs, tokenIDs...),
		validation.Field(&r.Quantities, quantities(len(r.IDs))...),
		validation.Field(&r.RoyaltyRecipient, evmAddress),
		validation.Field(&r.RoyaltyPercentage, validation.Min(0), validation.Max(100)),
	)
}

func (r *TransferERC1155Request) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return ErrNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Contract, validation.Required, evmAddress),
		validation.Field(&r.From, validation.Required, evmAddress),
		validation.Field(&r.To, validation.Required, evmAddress),
		validation.Field(&r.IDs, tokenIDs...),
		validation.Field(&r.Quantities, quantities(len(r.IDs))...),
		validation.Field(&r.BlockchainNetwork, network...),
	)
}
