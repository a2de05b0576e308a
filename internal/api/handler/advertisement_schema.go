package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/adboard/listings-api/internal/core/domain"
	"github.com/adboard/listings-api/internal/core/ports"
)

type createAdvertisementRequest struct {
	Title       string          `json:"title"       validate:"required,min=1,max=255"`
	Description string          `json:"description" validate:"required,min=1"`
	Price       decimal.Decimal `json:"price"`
	Author      string          `json:"author"      validate:"required,min=1,max=120"`
}

type updateAdvertisementRequest struct {
	Title       *string          `json:"title"       validate:"omitempty,min=1,max=255"`
	Description *string          `json:"description" validate:"omitempty,min=1"`
	Price       *decimal.Decimal `json:"price"`
	Author      *string          `json:"author"      validate:"omitempty,min=1,max=120"`
}

// advertisementResponse is the public view of a listing. Price is rendered
// as an exact decimal string.
type advertisementResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Author      string          `json:"author"`
	OwnerID     *int64          `json:"owner_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toAdvertisementResponse(ad *domain.Advertisement) advertisementResponse {
	return advertisementResponse{
		ID:          ad.ID,
		Title:       ad.Title,
		Description: ad.Description,
		Price:       ad.Price,
		Author:      ad.Author,
		OwnerID:     ad.OwnerID,
		CreatedAt:   ad.CreatedAt,
	}
}

func toAdvertisementResponses(ads []domain.Advertisement) []advertisementResponse {
	out := make([]advertisementResponse, 0, len(ads))
	for i := range ads {
		out = append(out, toAdvertisementResponse(&ads[i]))
	}
	return out
}

// searchFilterFromQuery parses the search query string into a filter.
// Malformed decimals, timestamps or integers fail the request with 400.
func searchFilterFromQuery(c echo.Context) (ports.SearchFilter, error) {
	filter := ports.SearchFilter{
		Title:       c.QueryParam("title"),
		Description: c.QueryParam("description"),
		Author:      c.QueryParam("author"),
		Query:       c.QueryParam("q"),
	}

	var err error
	if filter.PriceFrom, err = queryDecimal(c, "price_from"); err != nil {
		return filter, err
	}
	if filter.PriceTo, err = queryDecimal(c, "price_to"); err != nil {
		return filter, err
	}
	if filter.CreatedFrom, err = queryTime(c, "created_from"); err != nil {
		return filter, err
	}
	if filter.CreatedTo, err = queryTime(c, "created_to"); err != nil {
		return filter, err
	}
	if filter.Limit, err = queryInt(c, "limit", 0); err != nil {
		return filter, err
	}
	if filter.Offset, err = queryInt(c, "offset", 0); err != nil {
		return filter, err
	}
	return filter, nil
}

func queryDecimal(c echo.Context, name string) (*decimal.Decimal, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return &d, nil
}

func queryTime(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return &t, nil
}
