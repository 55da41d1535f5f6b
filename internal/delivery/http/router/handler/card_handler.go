package handler

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"biolink/config"
	"biolink/internal/delivery/http/render"
	"biolink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// cardPagePath is served with meta tags when it carries a ?user= id.
const cardPagePath = "/card.html"

// reservedSegments are first path segments that never name a profile.
var reservedSegments = map[string]struct{}{
	"api":     {},
	"health":  {},
	"metrics": {},
}

// CardHandlerParams holds dependencies for CardHandler, injected by Fx.
type CardHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// CardHandler serves social preview pages for /:slug and /card.html?user=ID.
type CardHandler struct {
	profileUC usecase.ProfileUsecase
	renderer  *render.MetaTagRenderer
	logger    *slog.Logger
}

// NewCardHandler is the constructor for CardHandler
func NewCardHandler(params CardHandlerParams) *CardHandler {
	site := params.Config.Site

	return newCardHandler(
		params.ProfileUC,
		render.NewMetaTagRenderer(os.DirFS(site.PublicDir), site.CardTemplate, site.PlaceholderTitle),
		params.Logger,
	)
}

func newCardHandler(profileUC usecase.ProfileUsecase, renderer *render.MetaTagRenderer, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		profileUC: profileUC,
		renderer:  renderer,
		logger:    logger,
	}
}

// Serve is a middleware placed in front of static file serving. Requests it
// cannot answer, for any reason, continue down the chain untouched.
func (h *CardHandler) Serve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		slug, id, ok := cardTarget(c.Request())
		if !ok {
			return next(c)
		}

		card, err := h.profileUC.ResolveCard(c.Request().Context(), slug, id)
		if err != nil {
			h.logger.Debug("No card for request, deferring",
				slog.String("slug", slug), slog.String("user", id), slog.Any("error", err))

			return next(c)
		}

		page, err := h.renderer.Render(*card)
		if err != nil {
			h.logger.Warn("Failed to render card page, deferring", slog.Any("error", err))

			return next(c)
		}

		return c.HTMLBlob(http.StatusOK, page)
	}
}

// cardTarget extracts the slug and user id of a card request.
func cardTarget(req *http.Request) (slug, id string, ok bool) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return "", "", false
	}

	id = req.URL.Query().Get("user")
	if req.URL.Path == cardPagePath {
		return "", id, id != ""
	}

	segment := strings.TrimSuffix(strings.TrimPrefix(req.URL.Path, "/"), "/")
	if segment == "" || strings.ContainsAny(segment, "/.") {
		return "", "", false
	}
	if _, reserved := reservedSegments[segment]; reserved {
		return "", "", false
	}

	return segment, id, true
}
