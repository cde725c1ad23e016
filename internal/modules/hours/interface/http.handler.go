package transport

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"dineHoursApi/internal/modules/hours/application/port"
	"dineHoursApi/internal/modules/hours/application/usecase"
	"dineHoursApi/internal/modules/hours/domain"
	"dineHoursApi/internal/shared/auth"
	"dineHoursApi/internal/shared/httputil"
)

var errBadInstant = errors.New("invalid query instant")

// instantLayouts are the fixed timestamp formats the API accepts. The service
// deliberately does no free-form date parsing; callers decompose anything
// fancier themselves.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

type restaurantsResponse struct {
	Restaurants []string `json:"restaurants"`
}

type countResponse struct {
	Count int `json:"count"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type reloadResponse struct {
	Count int `json:"count"`
}

type restaurantDetailResponse struct {
	Name     string              `json:"name"`
	Schedule map[string][]string `json:"schedule"`
}

// HTTPHandler exposes the catalog over REST.
type HTTPHandler struct {
	catalog   *usecase.Catalog
	reload    *usecase.ReloadUseCase
	validator auth.TokenValidator
	mapper    *httputil.ErrorMapper
}

func NewHTTPHandler(catalog *usecase.Catalog, reload *usecase.ReloadUseCase, validator auth.TokenValidator) *HTTPHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(usecase.ErrNotLoaded, http.StatusServiceUnavailable, "restaurant data not loaded").
		WithMapping(usecase.ErrInvalidWeekday, http.StatusBadRequest, "weekday must be between 0 (Monday) and 6 (Sunday)").
		WithMapping(errBadInstant, http.StatusBadRequest, "invalid datetime format").
		WithMapping(port.ErrDatasetLoad, http.StatusBadGateway, "dataset unavailable").
		WithMapping(auth.ErrMissingToken, http.StatusUnauthorized, "missing token").
		WithMapping(auth.ErrInvalidToken, http.StatusUnauthorized, "invalid token")
	return &HTTPHandler{catalog: catalog, reload: reload, validator: validator, mapper: mapper}
}

// Register mounts the REST routes on the echo instance.
func (h *HTTPHandler) Register(e *echo.Echo) {
	e.GET("/health", h.handleHealth)
	e.GET("/restaurants/open", h.handleOpen)
	e.GET("/restaurants/count", h.handleCount)
	e.GET("/restaurants/open-on/:day", h.handleOpenOnDay)
	e.GET("/restaurants/:name", h.handleRestaurant)
	e.POST("/admin/reload", h.handleReload)
}

func (h *HTTPHandler) httpError(err error) *echo.HTTPError {
	info := h.mapper.Map(err)
	return echo.NewHTTPError(info.Status, info.Message)
}

func (h *HTTPHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "healthy", Message: "restaurant hours API is running"})
}

func (h *HTTPHandler) handleOpen(c echo.Context) error {
	day, at, err := queryInstant(c)
	if err != nil {
		return h.httpError(err)
	}
	open, err := h.catalog.QueryOpen(day, at)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, restaurantsResponse{Restaurants: open})
}

func (h *HTTPHandler) handleCount(c echo.Context) error {
	if !h.catalog.IsLoaded() {
		return h.httpError(usecase.ErrNotLoaded)
	}
	return c.JSON(http.StatusOK, countResponse{Count: h.catalog.Count()})
}

func (h *HTTPHandler) handleOpenOnDay(c echo.Context) error {
	day, err := parseWeekdayParam(c.Param("day"))
	if err != nil {
		return h.httpError(err)
	}
	open, err := h.catalog.OpenOnWeekday(day)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, restaurantsResponse{Restaurants: open})
}

func (h *HTTPHandler) handleRestaurant(c echo.Context) error {
	name := c.Param("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	resto, ok := h.catalog.FindByName(name)
	if !ok {
		if !h.catalog.IsLoaded() {
			return h.httpError(usecase.ErrNotLoaded)
		}
		return echo.NewHTTPError(http.StatusNotFound, "restaurant not found")
	}
	return c.JSON(http.StatusOK, detailFromRestaurant(resto))
}

func (h *HTTPHandler) handleReload(c echo.Context) error {
	claims, err := h.validator.Validate(auth.ExtractToken(c.Request()))
	if err != nil {
		return h.httpError(err)
	}
	if !claims.HasRole("admin") {
		return echo.NewHTTPError(http.StatusForbidden, "admin role required")
	}
	count, err := h.reload.Execute(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, reloadResponse{Count: count})
}

// queryInstant decomposes the request into a weekday and a time of day.
// Either a fixed-format "datetime" parameter or explicit "day" (0=Monday) and
// "time" (HH:MM) parameters are accepted.
func queryInstant(c echo.Context) (domain.Weekday, domain.TimeOfDay, error) {
	if raw := strings.TrimSpace(c.QueryParam("datetime")); raw != "" {
		for _, layout := range instantLayouts {
			if parsed, err := time.Parse(layout, raw); err == nil {
				// time.Weekday starts at Sunday; the API counts from Monday.
				day := domain.Weekday((int(parsed.Weekday()) + 6) % 7)
				return day, domain.TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
			}
		}
		return 0, domain.TimeOfDay{}, fmt.Errorf("%w: %s", errBadInstant, raw)
	}

	dayRaw := strings.TrimSpace(c.QueryParam("day"))
	timeRaw := strings.TrimSpace(c.QueryParam("time"))
	if dayRaw == "" || timeRaw == "" {
		return 0, domain.TimeOfDay{}, fmt.Errorf("%w: datetime or day+time required", errBadInstant)
	}
	day, err := parseWeekdayParam(dayRaw)
	if err != nil {
		return 0, domain.TimeOfDay{}, err
	}
	clock, err := time.Parse("15:04", timeRaw)
	if err != nil {
		return 0, domain.TimeOfDay{}, fmt.Errorf("%w: %s", errBadInstant, timeRaw)
	}
	return day, domain.TimeOfDay{Hour: clock.Hour(), Minute: clock.Minute()}, nil
}

// parseWeekdayParam accepts a weekday index ("0".."6") or a day token the
// dataset grammar knows ("mon", "tues", ...).
func parseWeekdayParam(raw string) (domain.Weekday, error) {
	if index, err := strconv.Atoi(raw); err == nil {
		day := domain.Weekday(index)
		if !day.Valid() {
			return 0, usecase.ErrInvalidWeekday
		}
		return day, nil
	}
	days, err := domain.ParseDayList(raw)
	if err != nil || len(days) != 1 {
		return 0, usecase.ErrInvalidWeekday
	}
	return days[0], nil
}

func detailFromRestaurant(resto domain.Restaurant) restaurantDetailResponse {
	schedule := make(map[string][]string, len(resto.Schedule))
	for day, entry := range resto.Schedule {
		ranges := make([]string, 0, len(entry.Ranges))
		for _, r := range entry.Ranges {
			ranges = append(ranges, r.Start.String()+"-"+r.End.String())
		}
		schedule[day.String()] = ranges
	}
	return restaurantDetailResponse{Name: resto.Name, Schedule: schedule}
}
