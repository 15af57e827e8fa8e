package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/base/delivery"
	"github.com/opepen-graveyard/goapi/domain/opepen"
)

//go:embed templates/graveyard.html
var templates embed.FS

var page = template.Must(template.ParseFS(templates, "templates/graveyard.html"))

type handler struct {
	gallery opepen.GalleryUseCase
}

func New(e *echo.Echo, gallery opepen.GalleryUseCase) {
	h := &handler{gallery}
	e.GET("/", h.render)
	e.GET("/api/graveyard", h.getGraveyard)
}

func (h *handler) render(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	g := h.gallery.Load(ctx)
	buf := &bytes.Buffer{}
	if err := page.Execute(buf, g); err != nil {
		ctx.WithField("err", err).Error("page.Execute failed")
		return delivery.MakeErrorResp(c, http.StatusInternalServerError, opepen.MsgInternalServerError, "")
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// getGraveyard
//
//	@Summary		Get the graveyard
//	@Description	Burned Opepen grouped by release set. Failures are reported in state and error, not in the status code.
//	@Tags			opepen
//	@Produce		json
//	@Success		200	{object}	opepen.Gallery
//	@Router			/api/graveyard [get]
func (h *handler) getGraveyard(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	return delivery.MakeJsonResp(c, http.StatusOK, h.gallery.Load(ctx))
}
