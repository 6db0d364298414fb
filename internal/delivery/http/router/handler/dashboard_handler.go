package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"firetrace/internal/delivery/http/response"
	"firetrace/internal/domain/entity"
	"firetrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	AggregationUC usecase.AggregationUsecase
	Logger        *slog.Logger
}

// DashboardHandler serves the aggregated dashboard and history views.
type DashboardHandler struct {
	aggregationUC usecase.AggregationUsecase
	logger        *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		aggregationUC: params.AggregationUC,
		logger:        params.Logger,
	}
}

// GetDashboard returns group stats plus mappable address groups. Clients
// poll this endpoint; every call recomputes from current data.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	dashboard, err := h.aggregationUC.GetDashboard(c.Request().Context(), userID, h.getRole(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard, "Dashboard retrieved successfully")
}

// GetHistory returns one page of the scan history. Query parameters: page,
// level, search, sort.
func (h *DashboardHandler) GetHistory(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	query := usecase.HistoryQuery{
		Page:   1,
		Search: c.QueryParam("search"),
		Sort:   usecase.HistorySortLatest,
	}

	if pageParam := c.QueryParam("page"); pageParam != "" {
		page, err := strconv.Atoi(pageParam)
		if err != nil || page < 1 {
			return response.BadRequest(c, "INVALID_PAGE", "Page must be a positive integer")
		}
		query.Page = page
	}

	if levelParam := c.QueryParam("level"); levelParam != "" {
		level := entity.RiskLevelFromString(levelParam)
		if level == entity.RiskUnset {
			return response.BadRequest(c, "INVALID_LEVEL", "Level must be one of LOW, MODERATE, HIGH")
		}
		query.Level = level
	}

	if sortParam := c.QueryParam("sort"); sortParam != "" {
		switch usecase.HistorySort(sortParam) {
		case usecase.HistorySortLatest, usecase.HistorySortOldest:
			query.Sort = usecase.HistorySort(sortParam)
		default:
			return response.BadRequest(c, "INVALID_SORT", "Sort must be latest or oldest")
		}
	}

	page, err := h.aggregationUC.GetHistory(c.Request().Context(), userID, h.getRole(c), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page, "History retrieved successfully")
}

// getUserID extracts the user ID from the context
func (h *DashboardHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	return userID, nil
}

// getRole extracts the caller role from the context
func (h *DashboardHandler) getRole(c echo.Context) entity.Role {
	if role, ok := c.Get("role").(entity.Role); ok {
		return role
	}

	return entity.RoleUser
}
