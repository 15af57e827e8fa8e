package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/domain"
	"github.com/opepen-graveyard/goapi/domain/opepen"
	"github.com/opepen-graveyard/goapi/service/etherscan"
	mockEtherscan "github.com/opepen-graveyard/goapi/service/etherscan/mocks"
)

var (
	mockCtx = ctx.Background()
	zero    = domain.Address("0x0000000000000000000000000000000000000000")
	alice   = domain.Address("0x1111111111111111111111111111111111111111")
	bob     = domain.Address("0x2222222222222222222222222222222222222222")
)

type testsuite struct {
	suite.Suite
	mockEtherscan *mockEtherscan.Client
	subject       opepen.BurnUseCase
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockEtherscan = &mockEtherscan.Client{}
	t.subject = NewBurnUseCase(&BurnUseCaseCfg{
		Etherscan: t.mockEtherscan,
	})
}

func (t *testsuite) TearDownTest() {
	t.mockEtherscan.AssertExpectations(t.T())
}

func (t *testsuite) TestGetBurnedIds() {
	t.mockEtherscan.
		On("GetNftTransfers", mockCtx, opepen.ContractAddress, etherscan.SortDesc).
		Return([]etherscan.NftTransfer{
			{To: zero, TokenID: "5"},
			{To: alice, TokenID: "7"},
			{To: zero, TokenID: "5"},
			{To: zero, TokenID: "9"},
		}, nil).Once()

	res, err := t.subject.GetBurnedIds(mockCtx)
	t.NoError(err)
	t.Equal(&opepen.BurnedIds{BurnedIds: []string{"5", "9"}, Total: 2}, res)
}

func (t *testsuite) TestGetBurnedIdsNoBurns() {
	t.mockEtherscan.
		On("GetNftTransfers", mockCtx, opepen.ContractAddress, etherscan.SortDesc).
		Return([]etherscan.NftTransfer{
			{From: zero, To: alice, TokenID: "1"},
			{From: alice, To: bob, TokenID: "1"},
		}, nil).Once()

	res, err := t.subject.GetBurnedIds(mockCtx)
	t.NoError(err)
	t.Equal([]string{}, res.BurnedIds)
	t.Equal(0, res.Total)
}

func (t *testsuite) TestGetBurnedIdsUpstreamError() {
	upstreamErr := &domain.UpstreamError{Message: "NOTOK"}
	t.mockEtherscan.
		On("GetNftTransfers", mockCtx, opepen.ContractAddress, etherscan.SortDesc).
		Return(nil, upstreamErr).Once()

	res, err := t.subject.GetBurnedIds(mockCtx)
	t.Nil(res)
	t.Equal(upstreamErr, err)
}

func (t *testsuite) TestCustomContract() {
	contract := domain.Address("0xabc")
	subject := NewBurnUseCase(&BurnUseCaseCfg{
		Etherscan: t.mockEtherscan,
		Contract:  contract,
	})
	t.mockEtherscan.
		On("GetNftTransfers", mockCtx, contract, etherscan.SortDesc).
		Return([]etherscan.NftTransfer{}, nil).Once()

	res, err := subject.GetBurnedIds(mockCtx)
	t.NoError(err)
	t.Equal(0, res.Total)
}

func TestBurnedTokenIds(t *testing.T) {
	tests := []struct {
		name      string
		transfers []etherscan.NftTransfer
		want      []string
	}{
		{
			name:      "empty",
			transfers: nil,
			want:      []string{},
		},
		{
			name: "burn address matched case insensitively",
			transfers: []etherscan.NftTransfer{
				{To: domain.Address("0X0000000000000000000000000000000000000000"), TokenID: "3"},
				{To: zero, TokenID: "4"},
			},
			want: []string{"3", "4"},
		},
		{
			name: "first seen order",
			transfers: []etherscan.NftTransfer{
				{To: zero, TokenID: "9"},
				{To: zero, TokenID: "1"},
				{To: zero, TokenID: "9"},
				{To: zero, TokenID: "2"},
				{To: zero, TokenID: "1"},
			},
			want: []string{"9", "1", "2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, BurnedTokenIds(tt.transfers))
		})
	}
}
