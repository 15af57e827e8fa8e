package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/domain/opepen"
	"github.com/opepen-graveyard/goapi/domain/opepen/mocks"
)

var mockCtx = ctx.Background()

func readyGallery() *opepen.Gallery {
	members := []opepen.TokenMetadata{{
		TokenId:    "12",
		Name:       "Opepen 4, Edition 12",
		Image:      "https://img/12.png",
		Attributes: []opepen.Attribute{{TraitType: "Revealed", Value: "Yes"}, {TraitType: "Set", Value: "Gradient"}},
	}}
	unrevealed := []opepen.TokenMetadata{{
		TokenId:    "7",
		Name:       "<b>Opepen #7</b>",
		Attributes: []opepen.Attribute{},
	}}
	return &opepen.Gallery{
		State:  opepen.StateReady,
		Total:  2,
		Supply: opepen.Supply,
		Tokens: append(append([]opepen.TokenMetadata{}, unrevealed...), members...),
		Groups: []opepen.Group{
			{Key: opepen.KeyUnrevealed, SetName: opepen.KeyUnrevealed, Members: unrevealed},
			{Key: "Set 4", SetName: "Gradient", Members: members},
		},
	}
}

type handlerSuite struct {
	suite.Suite
	e           *echo.Echo
	mockGallery *mocks.GalleryUseCase
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.mockGallery = &mocks.GalleryUseCase{}
	s.e = echo.New()
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", mockCtx)
			return next(c)
		}
	})
	New(s.e, s.mockGallery)
}

func (s *handlerSuite) TearDownTest() {
	s.mockGallery.AssertExpectations(s.T())
}

func (s *handlerSuite) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestRenderReady() {
	s.mockGallery.On("Load", mockCtx).Return(readyGallery()).Once()

	rec := s.get("/")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), "text/html")

	body := rec.Body.String()
	s.Contains(body, "2/16000 (0.01%)")
	s.Contains(body, "<summary>Unrevealed (1)</summary>")
	s.Contains(body, "<summary>Set 4 - Gradient (1)</summary>")
	s.Contains(body, `src="https://img/12.png"`)
	s.Contains(body, "Image+Not+Available")
	s.Contains(body, "&lt;b&gt;Opepen #7&lt;/b&gt;")
	s.NotContains(body, "<b>Opepen #7</b>")
	s.NotContains(body, `class="error"`)
	s.Less(strings.Index(body, "Unrevealed (1)"), strings.Index(body, "Set 4 - Gradient (1)"))
}

func (s *handlerSuite) TestRenderError() {
	g := &opepen.Gallery{Supply: opepen.Supply, Tokens: []opepen.TokenMetadata{}, Groups: []opepen.Group{}}
	s.mockGallery.On("Load", mockCtx).Return(g.Fail("No burned Opepen IDs found")).Once()

	rec := s.get("/")
	s.Equal(http.StatusOK, rec.Code)

	body := rec.Body.String()
	s.Contains(body, "Error: No burned Opepen IDs found")
	s.Contains(body, "No Opepen metadata available.")
	s.Contains(body, "0/16000 (0.00%)")
	s.NotContains(body, "<details>")
}

func (s *handlerSuite) TestGetGraveyard() {
	s.mockGallery.On("Load", mockCtx).Return(readyGallery()).Once()

	rec := s.get("/api/graveyard")
	s.Equal(http.StatusOK, rec.Code)

	res := opepen.Gallery{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.Equal(opepen.StateReady, res.State)
	s.Equal(2, res.Total)
	s.Len(res.Groups, 2)
	s.Equal("Set 4", res.Groups[1].Key)
	s.Equal("Gradient", res.Groups[1].SetName)
}
