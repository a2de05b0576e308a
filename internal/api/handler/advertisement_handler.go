package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adboard/listings-api/internal/api/metrics"
	"github.com/adboard/listings-api/internal/core/ports"
)

// AdvertisementHandler handles HTTP requests for listing operations.
type AdvertisementHandler struct {
	service ports.AdvertisementService
}

func NewAdvertisementHandler(service ports.AdvertisementService) *AdvertisementHandler {
	return &AdvertisementHandler{service: service}
}

// Create stores a new listing owned by the caller.
//
// @Summary      Create a listing
// @Tags         advertisements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAdvertisementRequest  true  "Listing details"
// @Success      201   {object}  advertisementResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /advertisement [post]
func (h *AdvertisementHandler) Create(c echo.Context) error {
	caller, err := requireCaller(c)
	if err != nil {
		return err
	}

	var req createAdvertisementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !req.Price.IsPositive() {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be greater than 0")
	}

	created, err := h.service.Create(c.Request().Context(), caller, ports.CreateAdvertisementInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Author:      req.Author,
	})
	if err != nil {
		return err
	}

	metrics.AdvertisementsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toAdvertisementResponse(created))
}

// Get returns a single listing. Public endpoint.
//
// @Summary      Get a listing by id
// @Tags         advertisements
// @Produce      json
// @Param        id   path      int  true  "Advertisement id"
// @Success      200  {object}  advertisementResponse
// @Failure      404  {object}  errorResponse
// @Router       /advertisement/{id} [get]
func (h *AdvertisementHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ad, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdvertisementResponse(ad))
}

// Search returns listings matching the query filters, newest first. Public
// endpoint.
//
// @Summary      Search listings
// @Tags         advertisements
// @Produce      json
// @Param        title         query     string  false  "Substring match on title"
// @Param        description   query     string  false  "Substring match on description"
// @Param        author        query     string  false  "Substring match on author"
// @Param        q             query     string  false  "Substring match on any of title, description, author"
// @Param        price_from    query     string  false  "Inclusive lower price bound"
// @Param        price_to      query     string  false  "Inclusive upper price bound"
// @Param        created_from  query     string  false  "Inclusive lower creation bound (RFC 3339)"
// @Param        created_to    query     string  false  "Inclusive upper creation bound (RFC 3339)"
// @Param        limit         query     int     false  "Page size (1-200, default 50)"
// @Param        offset        query     int     false  "Page offset"
// @Success      200           {array}   advertisementResponse
// @Failure      400           {object}  errorResponse
// @Router       /advertisement [get]
func (h *AdvertisementHandler) Search(c echo.Context) error {
	filter, err := searchFilterFromQuery(c)
	if err != nil {
		return err
	}

	ads, err := h.service.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	metrics.ListingSearchesTotal.Inc()
	return c.JSON(http.StatusOK, toAdvertisementResponses(ads))
}

// Patch applies a sparse update to a listing. Owner or privileged callers.
//
// @Summary      Update a listing
// @Tags         advertisements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                         true  "Advertisement id"
// @Param        body  body      updateAdvertisementRequest  true  "Fields to change"
// @Success      200   {object}  advertisementResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /advertisement/{id} [patch]
func (h *AdvertisementHandler) Patch(c echo.Context) error {
	caller, err := requireCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateAdvertisementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Price != nil && !req.Price.IsPositive() {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be greater than 0")
	}

	updated, err := h.service.Patch(c.Request().Context(), caller, id, ports.AdvertisementPatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Author:      req.Author,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdvertisementResponse(updated))
}

// Delete removes a listing. Owner or privileged callers.
//
// @Summary      Delete a listing
// @Tags         advertisements
// @Security     BearerAuth
// @Param        id  path  int  true  "Advertisement id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /advertisement/{id} [delete]
func (h *AdvertisementHandler) Delete(c echo.Context) error {
	caller, err := requireCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
