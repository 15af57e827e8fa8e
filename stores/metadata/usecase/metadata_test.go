package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	bCtx "github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/domain"
	"github.com/opepen-graveyard/goapi/domain/opepen"
	"github.com/opepen-graveyard/goapi/service/alchemy"
	mockAlchemy "github.com/opepen-graveyard/goapi/service/alchemy/mocks"
)

const testDelay = 20 * time.Millisecond

var mockCtx = bCtx.Background()

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func item(id int) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(
		`{"id":{"tokenId":"0x%064x"},"title":"Opepen %d","metadata":{"name":"Opepen %d"}}`,
		id, id, id,
	))
}

// echoItems answers every requested token with a well formed item
func echoItems(_ bCtx.Ctx, refs []alchemy.TokenRef) []json.RawMessage {
	items := []json.RawMessage{}
	for _, ref := range refs {
		n, _ := strconv.Atoi(ref.TokenId)
		items = append(items, item(n))
	}
	return items
}

func ids(from, to int) []string {
	res := []string{}
	for i := from; i <= to; i++ {
		res = append(res, strconv.Itoa(i))
	}
	return res
}

func batchOf(first string, size int) interface{} {
	return mock.MatchedBy(func(refs []alchemy.TokenRef) bool {
		return len(refs) == size && refs[0].TokenId == first
	})
}

type testsuite struct {
	suite.Suite
	mockAlchemy *mockAlchemy.Client
	subject     opepen.MetadataUseCase
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockAlchemy = &mockAlchemy.Client{}
	t.subject = NewMetadataUseCase(&MetadataUseCaseCfg{
		Alchemy:    t.mockAlchemy,
		BatchDelay: testDelay,
	})
}

func (t *testsuite) TearDownTest() {
	t.mockAlchemy.AssertExpectations(t.T())
}

func (t *testsuite) TestEmptyIds() {
	res, err := t.subject.GetMetadata(mockCtx, []string{})
	t.Nil(res)
	t.True(errors.Is(err, domain.ErrBadParamInput))
	t.Equal("Token IDs are required", err.Error())
	t.mockAlchemy.AssertNotCalled(t.T(), "GetNFTMetadataBatch", mock.Anything, mock.Anything)
}

func (t *testsuite) TestBatching() {
	t.mockAlchemy.On("GetNFTMetadataBatch", mockCtx, batchOf("1", 100)).Return(echoItems, nil).Once()
	t.mockAlchemy.On("GetNFTMetadataBatch", mockCtx, batchOf("101", 100)).Return(echoItems, nil).Once()
	t.mockAlchemy.On("GetNFTMetadataBatch", mockCtx, batchOf("201", 50)).Return(echoItems, nil).Once()

	start := time.Now()
	res, err := t.subject.GetMetadata(mockCtx, ids(1, 250))
	elapsed := time.Since(start)

	t.NoError(err)
	t.Equal(250, res.Len())
	t.Equal(ids(1, 250), res.Ids())
	t.GreaterOrEqual(int64(elapsed), int64(2*testDelay))

	e, ok := res.Get("250")
	t.True(ok)
	t.Equal("Opepen 250", e.Title)
}

func (t *testsuite) TestSingleBatchHasNoDelay() {
	subject := NewMetadataUseCase(&MetadataUseCaseCfg{
		Alchemy:    t.mockAlchemy,
		BatchDelay: time.Hour,
	})
	t.mockAlchemy.On("GetNFTMetadataBatch", mockCtx, batchOf("1", 3)).Return(echoItems, nil).Once()

	res, err := subject.GetMetadata(mockCtx, ids(1, 3))
	t.NoError(err)
	t.Equal([]string{"1", "2", "3"}, res.Ids())
}

func (t *testsuite) TestFailedBatchIsSkipped() {
	t.mockAlchemy.On("GetNFTMetadataBatch", mockCtx, batchOf("1", 100)).
		Return(nil, &domain.TransportError{StatusCode: 500}).Once()
	t.mockAlchemy.On("GetNFTMetadataBatch", mockCtx, batchOf("101", 20)).Return(echoItems, nil).Once()

	res, err := t.subject.GetMetadata(mockCtx, ids(1, 120))
	t.NoError(err)
	t.Equal(ids(101, 120), res.Ids())
}

func (t *testsuite) TestAllBatchesFail() {
	t.mockAlchemy.On("GetNFTMetadataBatch", mockCtx, mock.Anything).
		Return(nil, fmt.Errorf("getNFTMetadataBatch: %w", domain.ErrUnexpectedResponse)).Twice()

	res, err := t.subject.GetMetadata(mockCtx, ids(1, 150))
	t.Nil(res)
	t.True(errors.Is(err, domain.ErrNotFound))
	t.Equal("No metadata available for the requested token IDs", err.Error())
}

func (t *testsuite) TestIncompleteItemsAreDropped() {
	t.mockAlchemy.On("GetNFTMetadataBatch", mockCtx, batchOf("1", 4)).Return([]json.RawMessage{
		item(1),
		json.RawMessage(`{"title":"no id"}`),
		json.RawMessage(`{"id":{}}`),
		json.RawMessage(`"not an object"`),
		item(4),
	}, nil).Once()

	res, err := t.subject.GetMetadata(mockCtx, ids(1, 4))
	t.NoError(err)
	t.Equal([]string{"1", "4"}, res.Ids())
}

func (t *testsuite) TestUnrequestedTokensAreDropped() {
	t.mockAlchemy.On("GetNFTMetadataBatch", mockCtx, batchOf("7", 1)).Return([]json.RawMessage{
		item(7),
		item(8),
	}, nil).Once()

	res, err := t.subject.GetMetadata(mockCtx, []string{"7"})
	t.NoError(err)
	t.Equal([]string{"7"}, res.Ids())
}

func (t *testsuite) TestItemsKeepProviderOrder() {
	t.mockAlchemy.On("GetNFTMetadataBatch", mockCtx, batchOf("3", 3)).Return([]json.RawMessage{
		item(2),
		item(3),
		item(1),
	}, nil).Once()

	res, err := t.subject.GetMetadata(mockCtx, []string{"3", "1", "2"})
	t.NoError(err)
	t.Equal([]string{"2", "3", "1"}, res.Ids())
}

func (t *testsuite) TestMissingApikey() {
	confErr := &domain.ConfigurationError{Setting: "alchemy.apiKey", Message: "Alchemy API key is not configured"}
	t.mockAlchemy.On("GetNFTMetadataBatch", mockCtx, mock.Anything).Return(nil, confErr).Once()

	res, err := t.subject.GetMetadata(mockCtx, ids(1, 250))
	t.Nil(res)
	t.Equal(confErr, err)
}

func (t *testsuite) TestCancelledBetweenBatches() {
	c, cancel := bCtx.WithCancel(mockCtx)
	t.mockAlchemy.On("GetNFTMetadataBatch", c, batchOf("1", 100)).
		Run(func(mock.Arguments) { cancel() }).
		Return(echoItems, nil).Once()

	res, err := t.subject.GetMetadata(c, ids(1, 200))
	t.Nil(res)
	t.True(errors.Is(err, context.Canceled))
}

func TestNewMetadataUseCaseDefaults(t *testing.T) {
	req := require.New(t)
	u := NewMetadataUseCase(&MetadataUseCaseCfg{BatchSize: 500, BatchDelay: -time.Second}).(*metadataUseCase)
	req.Equal(alchemy.MaxBatchSize, u.batchSize)
	req.Equal(time.Duration(0), u.batchDelay)
	req.Equal(opepen.ContractAddress, u.contract)
}

func TestChunk(t *testing.T) {
	req := require.New(t)
	req.Equal([][]string{}, Chunk(nil, 100))
	req.Equal([][]string{{"1", "2"}, {"3"}}, Chunk([]string{"1", "2", "3"}, 2))
	req.Len(Chunk(ids(1, 250), 100), 3)
	req.Len(Chunk(ids(1, 200), 100), 2)
}
