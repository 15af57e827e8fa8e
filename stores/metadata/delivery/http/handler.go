package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/base/delivery"
	"github.com/opepen-graveyard/goapi/base/validator"
	"github.com/opepen-graveyard/goapi/domain/opepen"
)

const msgIdsRequired = "Token IDs are required"

type handler struct {
	metadata opepen.MetadataUseCase
}

func New(e *echo.Echo, metadata opepen.MetadataUseCase, mws ...echo.MiddlewareFunc) {
	h := &handler{metadata}
	e.GET("/api/opepen-metadata", h.getMetadata, mws...)
}

// getMetadata
//
//	@Summary		Get Opepen metadata
//	@Description	Provider metadata of the given tokens keyed by decimal token id, in provider order
//	@Tags			opepen
//	@Produce		json
//	@Param			ids	query		string	true	"comma separated token ids"	example(1,2,3)
//	@Success		200	{object}	map[string]object
//	@Failure		400	{object}	opepen.ErrorBody
//	@Failure		404	{object}	opepen.ErrorBody
//	@Failure		500	{object}	opepen.ErrorBody
//	@Router			/api/opepen-metadata [get]
func (h *handler) getMetadata(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Ids string `query:"ids" validate:"tokenids"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeErrorResp(c, http.StatusBadRequest, msgIdsRequired, "")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeErrorResp(c, http.StatusBadRequest, msgIdsRequired, "")
	}

	res, err := h.metadata.GetMetadata(ctx, validator.SplitTokenIds(p.Ids))
	if err != nil {
		ctx.WithField("err", err).Error("metadata.GetMetadata failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, opepen.MetadataError(err))
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
