package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finstatements/internal/core/ports/services"
	"github.com/SscSPs/finstatements/internal/dto"
	"github.com/SscSPs/finstatements/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reportCellHandler struct {
	cellService portssvc.ReportCellSvc
}

func registerReportCellRoutes(rg *gin.RouterGroup, cellService portssvc.ReportCellSvc) {
	h := &reportCellHandler{cellService: cellService}

	cells := rg.Group("/report-cells")
	{
		cells.GET("", h.listCells)
		cells.GET("/:cellID", h.getCell)
		cells.PUT("/:cellID", h.saveCell)
	}
}

// listCells godoc
// @Summary List report cells
// @Description Returns every saved note and comparison value keyed by cell id
// @Tags report-cells
// @Produce json
// @Success 200 {object} dto.ListReportCellsResponse
// @Failure 500 {object} map[string]string "Failed to list report cells"
// @Security BearerAuth
// @Router /report-cells [get]
func (h *reportCellHandler) listCells(c *gin.Context) {
	cells, err := h.cellService.ListCells(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "list report cells")
		return
	}
	c.JSON(http.StatusOK, dto.ListReportCellsResponse{Cells: cells})
}

// getCell godoc
// @Summary Get a report cell
// @Tags report-cells
// @Produce json
// @Param cellID path string true "Cell id, e.g. note_8 or prev_inc_gross"
// @Success 200 {object} dto.ReportCellResponse
// @Failure 400 {object} map[string]string "Invalid cell id"
// @Failure 404 {object} map[string]string "Cell not saved"
// @Failure 500 {object} map[string]string "Failed to load report cell"
// @Security BearerAuth
// @Router /report-cells/{cellID} [get]
func (h *reportCellHandler) getCell(c *gin.Context) {
	cell, err := h.cellService.GetCell(c.Request.Context(), c.Param("cellID"))
	if err != nil {
		respondWithError(c, err, "load report cell")
		return
	}
	c.JSON(http.StatusOK, dto.ToReportCellResponse(cell))
}

// saveCell godoc
// @Summary Save a report cell
// @Description Stores a note or comparison value. Saving never changes a computed amount.
// @Tags report-cells
// @Accept json
// @Produce json
// @Param cellID path string true "Cell id, e.g. note_8 or prev_inc_gross"
// @Param cell body dto.SaveReportCellRequest true "Cell value"
// @Success 200 {object} dto.ReportCellResponse
// @Failure 400 {object} map[string]string "Invalid cell id or value"
// @Failure 500 {object} map[string]string "Failed to save report cell"
// @Security BearerAuth
// @Router /report-cells/{cellID} [put]
func (h *reportCellHandler) saveCell(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveReportCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveCell", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cell, err := h.cellService.SaveCell(c.Request.Context(), c.Param("cellID"), req.Value)
	if err != nil {
		respondWithError(c, err, "save report cell")
		return
	}
	c.JSON(http.StatusOK, dto.ToReportCellResponse(cell))
}
