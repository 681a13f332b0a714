package vottun

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/ipfs/go-cid"
)

var ErrNilRequest = errors.New("request is nil")

var (
	evmAddress = validation.NewStringRuleWithError(
		common.IsHexAddress,
		validation.NewError("validation_is_evm_address", "must be a valid EVM address"),
	)

	contentID = validation.NewStringRuleWithError(
		func(s string) bool {
			_, err := cid.Decode(s)
			return err == nil
		},
		validation.NewError("validation_is_cid", "must be a valid IPFS CID"),
	)

	uint256 = validation.NewStringRuleWithError(
		func(s string) bool {
			_, ok := parseUint256(s)
			return ok
		},
		validation.NewError("validation_is_uint256", ErrInvalidUint256.Error()),
	)

	// absoluteURI accepts any scheme, so ipfs:// and ar:// pass where is.URL would not.
	absoluteURI = validation.NewStringRuleWithError(
		func(s string) bool {
			u, err := url.Parse(s)
			return err == nil && u.Scheme != "" && (u.Host != "" || u.Opaque != "" || u.Path != "")
		},
		validation.NewError("validation_is_uri", "must be an absolute URI"),
	)

	network = []validation.Rule{validation.Required, validation.Min(int64(1))}

	tokenID = []validation.Rule{validation.Required, uint256}

	tokenIDs = []validation.Rule{validation.Required, validation.Each(validation.Required, uint256)}
)

// sameLength checks that a batch slice pairs one-to-one with its ids.
func sameLength(n int) validation.Rule {
	return validation.Length(n, n).Error("must have the same length as ids")
}

// quantities pairs one amount with each id of a batch.
func quantities(n int) []validation.Rule {
	return []validation.Rule{validation.Required, validation.Each(validation.Required, uint256), sameLength(n)}
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
