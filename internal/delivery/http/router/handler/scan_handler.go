package handler

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"firetrace/internal/delivery/http/response"
	"firetrace/internal/domain/entity"
	"firetrace/internal/usecase"
	"firetrace/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScanHandlerParams holds dependencies for ScanHandler, injected by Fx.
type ScanHandlerParams struct {
	fx.In

	ScanUC usecase.ScanUsecase
	Logger *slog.Logger
}

// ScanHandler holds dependencies for scan-related handlers
type ScanHandler struct {
	scanUC usecase.ScanUsecase
	logger *slog.Logger
}

// NewScanHandler is the constructor for ScanHandler
func NewScanHandler(params ScanHandlerParams) *ScanHandler {
	return &ScanHandler{
		scanUC: params.ScanUC,
		logger: params.Logger,
	}
}

// SubmitScanRequest carries the address components accompanying the photo.
type SubmitScanRequest struct {
	Street      string `form:"street" validate:"required"`
	HouseNumber string `form:"houseNumber" validate:"required"`
}

// SubmitScan handles a multipart scan submission: an image file plus the
// street and house number form fields.
func (h *ScanHandler) SubmitScan(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req SubmitScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "MISSING_IMAGE", "Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_IMAGE", "Failed to open uploaded image")
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "INVALID_IMAGE", "Failed to read uploaded image")
	}

	start := time.Now()
	record, err := h.scanUC.SubmitScan(c.Request().Context(), &usecase.SubmitScanInput{
		Image:       image,
		MediaType:   fileHeader.Header.Get("Content-Type"),
		Street:      req.Street,
		HouseNumber: req.HouseNumber,
		UploaderID:  userID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Scan processed",
		slog.String("scanID", record.ID.String()),
		slog.String("riskLevel", record.RiskLevel.String()),
		slog.String("imageSize", util.FormatBytes(fileHeader.Size)),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return response.Success(c, http.StatusCreated, record, "Scan processed successfully")
}

// DeleteScan handles scan record deletion by its uploader or an administrator.
func (h *ScanHandler) DeleteScan(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	scanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid scan ID")
	}

	if err := h.scanUC.DeleteScan(c.Request().Context(), scanID, userID, h.getRole(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Scan deleted successfully"}, "Scan deleted successfully")
}

// getUserID extracts the user ID from the context
func (h *ScanHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	return userID, nil
}

// getRole extracts the caller role from the context
func (h *ScanHandler) getRole(c echo.Context) entity.Role {
	if role, ok := c.Get("role").(entity.Role); ok {
		return role
	}

	return entity.RoleUser
}
