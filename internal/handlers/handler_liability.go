package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/apperrors"
	portssvc "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/services"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/dto"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/middleware"
)

// liabilityHandler handles HTTP requests related to liabilities.
type liabilityHandler struct {
	liabilityService portssvc.LiabilitySvcFacade
}

func newLiabilityHandler(ls portssvc.LiabilitySvcFacade) *liabilityHandler {
	return &liabilityHandler{liabilityService: ls}
}

// registerLiabilityRoutes registers routes related to liabilities.
func registerLiabilityRoutes(rg *gin.RouterGroup, liabilityService portssvc.LiabilitySvcFacade) {
	h := newLiabilityHandler(liabilityService)

	liabilities := rg.Group("/liabilities")
	{
		liabilities.POST("", h.createLiability)
		liabilities.GET("", h.listLiabilities)
		liabilities.GET("/:id", h.getLiability)
		liabilities.PUT("/:id", h.updateLiability)
		liabilities.POST("/:id/settle", h.settleLiability)
		liabilities.DELETE("/:id", h.deleteLiability)
	}
}

// createLiability godoc
// @Summary Create a liability
// @Description Records a debt that may reduce the zakat base
// @Tags liabilities
// @Accept  json
// @Produce  json
// @Param   liability body dto.CreateLiabilityRequest true "Liability details"
// @Success 201 {object} dto.LiabilityResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /liabilities [post]
func (h *liabilityHandler) createLiability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	liability, err := h.liabilityService.CreateLiability(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create liability", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create liability"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToLiabilityResponse(liability))
}

// listLiabilities godoc
// @Summary List liabilities
// @Description Retrieves all of the user's liabilities
// @Tags liabilities
// @Produce  json
// @Success 200 {array} dto.LiabilityResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /liabilities [get]
func (h *liabilityHandler) listLiabilities(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	liabilities, err := h.liabilityService.ListLiabilities(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list liabilities"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLiabilityResponse(liabilities))
}

// getLiability godoc
// @Summary Get a liability
// @Description Retrieves a single liability by id
// @Tags liabilities
// @Produce  json
// @Param   id path string true "Liability ID"
// @Success 200 {object} dto.LiabilityResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Liability not found"
// @Security BearerAuth
// @Router /liabilities/{id} [get]
func (h *liabilityHandler) getLiability(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	liability, err := h.liabilityService.GetLiability(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Liability not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get liability"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLiabilityResponse(liability))
}

// updateLiability godoc
// @Summary Update a liability
// @Description Changes a liability's title, due date or deductibility
// @Tags liabilities
// @Accept  json
// @Produce  json
// @Param   id path string true "Liability ID"
// @Param   liability body dto.UpdateLiabilityRequest true "Fields to update"
// @Success 200 {object} dto.LiabilityResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Liability not found"
// @Security BearerAuth
// @Router /liabilities/{id} [put]
func (h *liabilityHandler) updateLiability(c *gin.Context) {
	var req dto.UpdateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	liability, err := h.liabilityService.UpdateLiability(c.Request.Context(), req, userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Liability not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update liability"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLiabilityResponse(liability))
}

// settleLiability godoc
// @Summary Settle a liability
// @Description Decrements the remaining amount; full settlement removes the liability
// @Tags liabilities
// @Accept  json
// @Produce  json
// @Param   id path string true "Liability ID"
// @Param   settlement body dto.SettleLiabilityRequest true "Settlement amount"
// @Success 200 {object} dto.LiabilityResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Liability not found"
// @Security BearerAuth
// @Router /liabilities/{id}/settle [post]
func (h *liabilityHandler) settleLiability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SettleLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	liability, err := h.liabilityService.SettleLiability(c.Request.Context(), userID, c.Param("id"), req.Amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Liability not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to settle liability", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle liability"})
		}
		return
	}

	if liability == nil {
		// Fully settled and removed.
		c.JSON(http.StatusOK, dto.LiabilityResponse{LiabilityID: c.Param("id"), Settled: true})
		return
	}

	c.JSON(http.StatusOK, dto.ToLiabilityResponse(liability))
}

// deleteLiability godoc
// @Summary Delete a liability
// @Description Removes a liability outright
// @Tags liabilities
// @Produce  json
// @Param   id path string true "Liability ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Liability not found"
// @Security BearerAuth
// @Router /liabilities/{id} [delete]
func (h *liabilityHandler) deleteLiability(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.liabilityService.DeleteLiability(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Liability not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete liability"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
