package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Galalike/fixed-cost-pro/internal/domain"
	"github.com/Galalike/fixed-cost-pro/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// maxImportSize bounds import request bodies. Real exports are a few
// kilobytes, so 10 MB leaves generous headroom.
const maxImportSize = 10 << 20

// BackupHandler handles export, import and reset HTTP requests
type BackupHandler struct {
	backupService *service.BackupService
	monthService  *service.MonthService
}

// NewBackupHandler creates a new BackupHandler
func NewBackupHandler(backupService *service.BackupService, monthService *service.MonthService) *BackupHandler {
	return &BackupHandler{
		backupService: backupService,
		monthService:  monthService,
	}
}

// Export handles GET /api/v1/backup/export
func (h *BackupHandler) Export(c echo.Context) error {
	data, err := h.backupService.Export()
	if err != nil {
		log.Error().Err(err).Msg("Failed to export backup")
		return NewInternalError(c, "An unexpected error occurred")
	}

	filename := fmt.Sprintf("fixcost_backup_%s.json", h.monthService.CurrentMonth())
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

// Import handles POST /api/v1/backup/import
func (h *BackupHandler) Import(c echo.Context) error {
	data, err := io.ReadAll(io.LimitReader(c.Request().Body, maxImportSize))
	if err != nil {
		return NewValidationError(c, "Failed to read request body", nil)
	}

	if err := h.backupService.Import(data); err != nil {
		if errors.Is(err, domain.ErrInvalidFormat) {
			return NewFormatError(c, "Backup file is not a valid export")
		}
		log.Error().Err(err).Msg("Failed to import backup")
		return NewInternalError(c, "An unexpected error occurred")
	}

	return c.NoContent(http.StatusNoContent)
}

// Reset handles POST /api/v1/backup/reset
func (h *BackupHandler) Reset(c echo.Context) error {
	h.backupService.Reset()
	return c.NoContent(http.StatusNoContent)
}
