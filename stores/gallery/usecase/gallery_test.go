package usecase

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/domain"
	"github.com/opepen-graveyard/goapi/domain/opepen"
	"github.com/opepen-graveyard/goapi/domain/opepen/mocks"
)

var mockCtx = ctx.Background()

type testsuite struct {
	suite.Suite
	mockRepo *mocks.GalleryRepo
	subject  opepen.GalleryUseCase
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockRepo = &mocks.GalleryRepo{}
	t.subject = NewGalleryUseCase(&GalleryUseCaseCfg{Repo: t.mockRepo})
}

func (t *testsuite) TearDownTest() {
	t.mockRepo.AssertExpectations(t.T())
}

func metadataSet(t *testsuite, raw string) *opepen.MetadataSet {
	set := opepen.NewMetadataSet()
	t.Require().NoError(set.UnmarshalJSON([]byte(raw)))
	return set
}

func (t *testsuite) TestReady() {
	t.mockRepo.On("GetBurnedIds", mockCtx).
		Return(&opepen.BurnedIds{BurnedIds: []string{"12", "7", "3"}, Total: 3}, nil).Once()
	t.mockRepo.On("GetMetadata", mockCtx, []string{"12", "7", "3"}).
		Return(metadataSet(t, `{
			"12": {"metadata": {"name": "Opepen 4, Edition 12", "attributes": [
				{"trait_type": "Revealed", "value": "Yes"},
				{"trait_type": "Set", "value": "Gradient"}
			]}, "media": [{"gateway": "https://img/12.png"}]},
			"7": {"metadata": {"attributes": [{"trait_type": "Revealed", "value": "No"}]}},
			"3": {"metadata": {"name": "Opepen 1, Edition 1", "attributes": [
				{"trait_type": "Revealed", "value": "Yes"},
				{"trait_type": "Set", "value": "Chroma"}
			]}}
		}`), nil).Once()

	g := t.subject.Load(mockCtx)
	t.Equal(opepen.StateReady, g.State)
	t.Empty(g.Error)
	t.Equal(3, g.Total)
	t.Equal(opepen.Supply, g.Supply)
	t.Equal("3/16000 (0.02%)", g.Progress())

	t.Len(g.Tokens, 3)
	t.Equal(opepen.TokenMetadata{
		TokenId: "12",
		Name:    "Opepen 4, Edition 12",
		Image:   "https://img/12.png",
		Attributes: []opepen.Attribute{
			{TraitType: "Revealed", Value: "Yes"},
			{TraitType: "Set", Value: "Gradient"},
		},
	}, g.Tokens[0])
	t.Equal("Opepen #7", g.Tokens[1].Name)
	t.Equal("", g.Tokens[1].Image)

	t.Equal([]string{"Unrevealed", "Set 1", "Set 4"}, keys(g.Groups))
	t.Equal("Set 4 - Gradient (1)", g.Groups[2].Title())
	t.Equal("Set 1 - Chroma (1)", g.Groups[1].Title())
}

func (t *testsuite) TestBurnedIdsFailure() {
	tests := []struct {
		err  error
		want string
	}{
		{
			err:  &opepen.APIError{StatusCode: http.StatusInternalServerError, Body: opepen.ErrorBody{Error: "Failed to fetch Opepen transfers", Details: "NOTOK"}},
			want: "Failed to fetch Opepen transfers",
		},
		{
			err:  &opepen.APIError{StatusCode: http.StatusBadGateway},
			want: "Failed to fetch burned Opepen IDs",
		},
		{
			err:  &domain.ConfigurationError{Message: "Etherscan API key is not configured"},
			want: "Etherscan API key is not configured",
		},
		{
			err:  errors.New("connection refused"),
			want: "Failed to fetch burned Opepen IDs",
		},
	}
	for _, tt := range tests {
		t.SetupTest()
		t.mockRepo.On("GetBurnedIds", mockCtx).Return(nil, tt.err).Once()

		g := t.subject.Load(mockCtx)
		t.Equal(opepen.StateError, g.State)
		t.Equal(tt.want, g.Error)
		t.Equal(0, g.Total)
		t.Empty(g.Groups)
		t.mockRepo.AssertNotCalled(t.T(), "GetMetadata", mock.Anything, mock.Anything)
	}
}

func (t *testsuite) TestNoBurnedIds() {
	t.mockRepo.On("GetBurnedIds", mockCtx).
		Return(&opepen.BurnedIds{BurnedIds: []string{}, Total: 0}, nil).Once()

	g := t.subject.Load(mockCtx)
	t.Equal(opepen.StateError, g.State)
	t.Equal("No burned Opepen IDs found", g.Error)
	t.Equal("0/16000 (0.00%)", g.Progress())
}

func (t *testsuite) TestMetadataFailure() {
	t.mockRepo.On("GetBurnedIds", mockCtx).
		Return(&opepen.BurnedIds{BurnedIds: []string{"1"}, Total: 1}, nil).Once()
	t.mockRepo.On("GetMetadata", mockCtx, []string{"1"}).
		Return(nil, &opepen.APIError{StatusCode: http.StatusNotFound}).Once()

	g := t.subject.Load(mockCtx)
	t.Equal(opepen.StateError, g.State)
	t.Equal("Failed to fetch metadata", g.Error)
	t.Equal(1, g.Total)
	t.Empty(g.Tokens)
}

func (t *testsuite) TestCustomSupply() {
	subject := NewGalleryUseCase(&GalleryUseCaseCfg{Repo: t.mockRepo, Supply: 100})
	t.mockRepo.On("GetBurnedIds", mockCtx).
		Return(&opepen.BurnedIds{BurnedIds: []string{}, Total: 0}, nil).Once()

	g := subject.Load(mockCtx)
	t.Equal(100, g.Supply)
}
