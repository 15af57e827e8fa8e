package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	TagEthAddress = "eth_addr"
	TagTokenIds   = "tokenids"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// SplitTokenIds splits a comma separated id list, dropping blank segments
func SplitTokenIds(raw string) []string {
	ids := []string{}
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			ids = append(ids, s)
		}
	}
	return ids
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	v.RegisterValidation(TagEthAddress, func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	v.RegisterValidation(TagTokenIds, func(fl validator.FieldLevel) bool {
		return len(SplitTokenIds(fl.Field().String())) > 0
	})
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
