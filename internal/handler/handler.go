package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bab-library/catalog-service/internal/errs"
	"github.com/bab-library/catalog-service/internal/links"
	"github.com/bab-library/catalog-service/internal/model"
	"github.com/bab-library/catalog-service/internal/openlibrary"
	"github.com/bab-library/catalog-service/internal/view"
	md "github.com/bab-library/catalog-service/pkg/middleware"
	"github.com/bab-library/catalog-service/pkg/validate"
)

type Handler struct {
	catalogSvc CatalogService
	sessionSvc SessionService
	lookupSvc  LookupService
	linksCfg   links.Config
	log        *zap.Logger
}

func New(catalogSvc CatalogService, sessionSvc SessionService, lookupSvc LookupService, linksCfg links.Config, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		sessionSvc: sessionSvc,
		lookupSvc:  lookupSvc,
		linksCfg:   linksCfg,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.GetBooks)
	api.GET("/books/:bookId", h.GetBook)
	api.GET("/books/:bookId/rent", h.RentBook)
	api.GET("/events", h.GetEvents)
	api.GET("/community", h.Community)

	api.POST("/admin/login", h.Login)
	api.POST("/admin/logout", h.Logout)

	admin := api.Group("/admin", h.adminAuth)
	admin.GET("/lookup", h.Lookup)

	admin.POST("/books", h.AddBook)
	admin.PATCH("/books/:bookId", h.UpdateBook)
	admin.DELETE("/books/:bookId", h.RemoveBook)

	admin.POST("/events", h.AddEvent)
	admin.DELETE("/events/:eventId", h.RemoveEvent)

	admin.GET("/templates", h.GetTemplates)
	admin.POST("/templates", h.AddTemplate)
	admin.DELETE("/templates/:templateId", h.RemoveTemplate)
	admin.POST("/templates/:templateId/events", h.CreateEventFromTemplate)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// GetBooks lists the catalog filtered by genre and free-text title search,
// together with the derived genre set and the requested layout policy.
func (h *Handler) GetBooks(c echo.Context) error {
	genre := c.QueryParam("genre")
	search := c.QueryParam("q")
	layout := view.LayoutFor(c.QueryParam("layout"))

	books := view.Filter(h.catalogSvc.Books(), genre, search)

	type resp struct {
		Items  []model.Book `json:"items"`
		Genres []string     `json:"genres"`
		Layout view.Layout  `json:"layout"`
	}
	return c.JSON(http.StatusOK, resp{
		Items:  books,
		Genres: h.catalogSvc.Genres(),
		Layout: layout,
	})
}

func (h *Handler) GetBook(c echo.Context) error {
	book, ok := h.catalogSvc.GetBook(c.Param("bookId"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	}
	return c.JSON(http.StatusOK, book)
}

// RentBook forms the outbound messaging deep link for a rent request.
func (h *Handler) RentBook(c echo.Context) error {
	book, ok := h.catalogSvc.GetBook(c.Param("bookId"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	}
	type resp struct {
		RentLink string `json:"rentLink"`
	}
	return c.JSON(http.StatusOK, resp{RentLink: links.RentLink(h.linksCfg, book)})
}

func (h *Handler) GetEvents(c echo.Context) error {
	events := h.catalogSvc.Events()
	if c.QueryParam("view") == "calendar" {
		type resp struct {
			Months []view.MonthGroup `json:"months"`
		}
		return c.JSON(http.StatusOK, resp{Months: view.Calendar(events)})
	}
	type resp struct {
		Items []model.Event `json:"items"`
	}
	return c.JSON(http.StatusOK, resp{Items: events})
}

func (h *Handler) Community(c echo.Context) error {
	return c.JSON(http.StatusOK, links.CommunityJoinInfo(h.linksCfg))
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.sessionSvc.Login(c.Request().Context(), req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, errs.ErrInvalidCredentials.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, model.LoginResponse{
		Token:     token,
		ExpiresIn: int(h.sessionSvc.TTL().Seconds()),
	})
}

func (h *Handler) Logout(c echo.Context) error {
	h.sessionSvc.Logout(c.Request().Header.Get(AdminTokenHeader))
	return c.NoContent(http.StatusNoContent)
}

// Lookup queries the external metadata service and maps the hits into
// editable book drafts for the add-book form.
func (h *Handler) Lookup(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty query")
	}

	docs := h.lookupSvc.Search(c.Request().Context(), query)
	drafts := make([]model.BookDraft, 0, len(docs))
	for _, doc := range docs {
		drafts = append(drafts, openlibrary.ToBookDraft(doc))
	}

	type resp struct {
		Items []model.BookDraft `json:"items"`
	}
	return c.JSON(http.StatusOK, resp{Items: drafts})
}

func (h *Handler) AddBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, h.catalogSvc.AddBook(req))
}

func (h *Handler) UpdateBook(c echo.Context) error {
	var upd model.BookUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, ok := h.catalogSvc.UpdateBook(c.Param("bookId"), upd)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) RemoveBook(c echo.Context) error {
	if !h.catalogSvc.RemoveBook(c.Param("bookId")) {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AddEvent(c echo.Context) error {
	var req model.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, h.catalogSvc.AddEvent(req))
}

func (h *Handler) RemoveEvent(c echo.Context) error {
	if !h.catalogSvc.RemoveEvent(c.Param("eventId")) {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetTemplates(c echo.Context) error {
	type resp struct {
		Items []model.EventTemplate `json:"items"`
	}
	return c.JSON(http.StatusOK, resp{Items: h.catalogSvc.Templates()})
}

func (h *Handler) AddTemplate(c echo.Context) error {
	var req model.CreateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, h.catalogSvc.AddTemplate(req))
}

func (h *Handler) RemoveTemplate(c echo.Context) error {
	if !h.catalogSvc.RemoveTemplate(c.Param("templateId")) {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CreateEventFromTemplate(c echo.Context) error {
	var req model.CreateFromTemplateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	event, ok := h.catalogSvc.CreateEventFromTemplate(c.Param("templateId"), req.Date)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	}
	return c.JSON(http.StatusCreated, event)
}
