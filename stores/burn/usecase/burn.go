package usecase

import (
	"github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/base/log"
	"github.com/opepen-graveyard/goapi/domain"
	"github.com/opepen-graveyard/goapi/domain/opepen"
	"github.com/opepen-graveyard/goapi/service/etherscan"
)

type BurnUseCaseCfg struct {
	Etherscan etherscan.Client
	Contract  domain.Address
}

type impl struct {
	etherscan etherscan.Client
	contract  domain.Address
}

func NewBurnUseCase(cfg *BurnUseCaseCfg) opepen.BurnUseCase {
	contract := cfg.Contract
	if contract.IsEmpty() {
		contract = opepen.ContractAddress
	}
	return &impl{
		etherscan: cfg.Etherscan,
		contract:  contract,
	}
}

func (im *impl) GetBurnedIds(c ctx.Ctx) (*opepen.BurnedIds, error) {
	transfers, err := im.etherscan.GetNftTransfers(c, im.contract, etherscan.SortDesc)
	if err != nil {
		c.WithFields(log.Fields{
			"contract": im.contract,
			"err":      err,
		}).Error("etherscan.GetNftTransfers failed")
		return nil, err
	}

	ids := BurnedTokenIds(transfers)
	c.WithFields(log.Fields{
		"transfers": len(transfers),
		"burned":    len(ids),
	}).Debug("collected burned ids")

	return &opepen.BurnedIds{
		BurnedIds: ids,
		Total:     len(ids),
	}, nil
}

// BurnedTokenIds keeps the token ids of transfers to the burn address,
// first occurrence wins.
func BurnedTokenIds(transfers []etherscan.NftTransfer) []string {
	ids := []string{}
	seen := map[string]struct{}{}
	for _, t := range transfers {
		if !t.To.Equals(domain.BurnAddress) {
			continue
		}
		if _, ok := seen[t.TokenID]; ok {
			continue
		}
		seen[t.TokenID] = struct{}{}
		ids = append(ids, t.TokenID)
	}
	return ids
}
