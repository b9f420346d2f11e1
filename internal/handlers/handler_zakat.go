package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/apperrors"
	portssvc "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/services"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/dto"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/middleware"
)

// zakatHandler handles HTTP requests related to zakat configuration,
// cycles and payments.
type zakatHandler struct {
	zakatService portssvc.ZakatSvcFacade
}

func newZakatHandler(zs portssvc.ZakatSvcFacade) *zakatHandler {
	return &zakatHandler{zakatService: zs}
}

// RegisterZakatRoutes registers routes related to the zakat obligation engine.
func RegisterZakatRoutes(rg *gin.RouterGroup, zakatService portssvc.ZakatSvcFacade) {
	h := newZakatHandler(zakatService)

	zakat := rg.Group("/zakat")
	{
		zakat.GET("/config", h.getConfig)
		zakat.PUT("/config", h.saveConfig)
		zakat.GET("/cycles", h.listCycles)
		zakat.POST("/cycles/generate", h.generateCycle)
		zakat.GET("/snapshot", h.getSnapshot)
		zakat.POST("/payments", h.recordPayment)
		zakat.GET("/payments", h.listPayments)
		zakat.POST("/sweep", h.sweepCycles)
	}
}

// sweepCycles godoc
// @Summary Sweep pending zakat cycles
// @Description Processes every configured user, transitioning cycles whose anniversary has passed. Idempotent; the scheduled ticker runs the same operation.
// @Tags zakat
// @Produce  json
// @Success 200 {object} dto.SweepResult
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /zakat/sweep [post]
func (h *zakatHandler) sweepCycles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.GetUserIDFromCtx(c.Request.Context()); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.zakatService.SweepPendingCycles(c.Request.Context())
	if err != nil {
		logger.Error("Sweep failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sweep pending cycles"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// getConfig godoc
// @Summary Get zakat configuration
// @Description Retrieves the user's anniversary rule and settings
// @Tags zakat
// @Produce  json
// @Success 200 {object} dto.ZakatConfigResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Configuration not set"
// @Security BearerAuth
// @Router /zakat/config [get]
func (h *zakatHandler) getConfig(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	config, err := h.zakatService.GetConfig(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Zakat configuration not set"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get zakat configuration"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToZakatConfigResponse(config))
}

// saveConfig godoc
// @Summary Save zakat configuration
// @Description Stores the anniversary rule (Hijri day/month or fixed solar date) and settings
// @Tags zakat
// @Accept  json
// @Produce  json
// @Param   config body dto.SaveZakatConfigRequest true "Configuration"
// @Success 200 {object} dto.ZakatConfigResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /zakat/config [put]
func (h *zakatHandler) saveConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveZakatConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	config, err := h.zakatService.SaveConfig(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save zakat config", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save zakat configuration"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToZakatConfigResponse(config))
}

// listCycles godoc
// @Summary List zakat cycles
// @Description Retrieves the user's cycles, most recent anniversary first
// @Tags zakat
// @Produce  json
// @Success 200 {array} dto.ZakatCycleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /zakat/cycles [get]
func (h *zakatHandler) listCycles(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cycles, err := h.zakatService.ListCycles(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cycles"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListZakatCycleResponse(cycles))
}

// generateCycle godoc
// @Summary Generate the current zakat cycle
// @Description Ensures the cycle for the next anniversary exists, refreshing figures if it already does
// @Tags zakat
// @Produce  json
// @Success 200 {object} dto.GenerateCycleResponse
// @Success 201 {object} dto.GenerateCycleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "No anniversary rule configured"
// @Security BearerAuth
// @Router /zakat/cycles/generate [post]
func (h *zakatHandler) generateCycle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cycle, created, err := h.zakatService.GenerateNextCycle(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotConfigured) {
			c.JSON(http.StatusConflict, gin.H{"error": "No zakat anniversary rule configured"})
		} else {
			logger.Error("Failed to generate cycle", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate cycle"})
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.GenerateCycleResponse{
		Cycle:   dto.ToZakatCycleResponse(cycle),
		Created: created,
	})
}

// getSnapshot godoc
// @Summary Get the live obligation snapshot
// @Description Computes the current holdings value, qualifying assets, deductions, nisab comparison and remaining due without changing cycle state
// @Tags zakat
// @Produce  json
// @Param   asOf query string false "Valuation date (RFC 3339); defaults to now"
// @Success 200 {object} dto.ZakatSnapshotResponse
// @Failure 400 {object} map[string]string "Invalid asOf date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "No anniversary rule configured"
// @Security BearerAuth
// @Router /zakat/snapshot [get]
func (h *zakatHandler) getSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asOf := time.Now().UTC()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date, expected RFC 3339"})
			return
		}
		asOf = parsed
	}

	snapshot, err := h.zakatService.Snapshot(c.Request.Context(), userID, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotConfigured) {
			c.JSON(http.StatusConflict, gin.H{"error": "No zakat anniversary rule configured"})
		} else {
			logger.Error("Failed to compute snapshot", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute snapshot"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToZakatSnapshotResponse(snapshot))
}

// recordPayment godoc
// @Summary Record a zakat payment
// @Description Appends a payment and applies the DUE to PAID transition when the due amount is covered
// @Tags zakat
// @Accept  json
// @Produce  json
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.ZakatPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /zakat/payments [post]
func (h *zakatHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.zakatService.RecordPayment(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToZakatPaymentResponse(payment))
}

// listPayments godoc
// @Summary List zakat payments
// @Description Retrieves the user's payments ordered by date
// @Tags zakat
// @Produce  json
// @Success 200 {array} dto.ZakatPaymentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /zakat/payments [get]
func (h *zakatHandler) listPayments(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payments, err := h.zakatService.ListPayments(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListZakatPaymentResponse(payments))
}
