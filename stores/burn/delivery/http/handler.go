package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/base/delivery"
	"github.com/opepen-graveyard/goapi/domain/opepen"
)

type handler struct {
	burn opepen.BurnUseCase
}

func New(e *echo.Echo, burn opepen.BurnUseCase, mws ...echo.MiddlewareFunc) {
	h := &handler{burn}
	e.GET("/api/burned-opepen-ids", h.getBurnedIds, mws...)
}

// getBurnedIds
//
//	@Summary		List burned Opepen
//	@Description	Token ids of every Opepen transferred to the zero address, newest first
//	@Tags			opepen
//	@Produce		json
//	@Success		200	{object}	opepen.BurnedIds
//	@Failure		500	{object}	opepen.ErrorBody
//	@Router			/api/burned-opepen-ids [get]
func (h *handler) getBurnedIds(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.burn.GetBurnedIds(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("burn.GetBurnedIds failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, opepen.BurnedIdsError(err))
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
