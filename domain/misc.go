package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type Address string

// BurnAddress is the all-zero address tokens are sent to when burned
var BurnAddress = Address(common.Address{}.Hex())

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TxHash string

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// Decimal returns the base-10 form of a token id given either in decimal or 0x-prefixed hex.
// Ids that are not numbers are returned unchanged.
func (i TokenId) Decimal() TokenId {
	s := strings.TrimSpace(string(i))
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return i
	}
	return TokenId(n.String())
}
