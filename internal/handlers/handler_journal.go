package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"slices"

	portssvc "github.com/SscSPs/finstatements/internal/core/ports/services"
	"github.com/SscSPs/finstatements/internal/dto"
	"github.com/SscSPs/finstatements/internal/middleware"
	"github.com/SscSPs/finstatements/internal/spreadsheet"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: js,
	}
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.postJournal)
		journals.GET("", h.listJournals)
		journals.GET("/export", h.exportJournals)
		journals.POST("/import", h.importJournals)
	}
}

// postJournal godoc
// @Summary Post a journal entry
// @Description Validates and appends a balanced journal entry. Entries cannot be edited once posted.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.CreateJournalRequest true "Journal entry"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid input, unbalanced entry or unknown account"
// @Failure 500 {object} map[string]string "Failed to post journal entry"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) postJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to post journal entry", slog.String("date", req.Date), slog.Int("lines", len(req.Details)))

	entry, err := h.journalService.PostJournalEntry(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "post journal entry")
		return
	}

	logger.Info("Journal entry posted", slog.Int64("entry_id", entry.ID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(entry))
}

// listJournals godoc
// @Summary List journal entries
// @Description Lists every journal entry, newest first, with account names resolved
// @Tags journals
// @Produce  json
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 500 {object} map[string]string "Failed to list journal entries"
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	entries, err := h.journalService.ListJournalEntries(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "list journal entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListJournalsResponse(entries))
}

// exportJournals godoc
// @Summary Export journal entries
// @Description Downloads the journal as an .xlsx workbook, one row per line, oldest entry first
// @Tags journals
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} map[string]string "Failed to export journal entries"
// @Security BearerAuth
// @Router /journals/export [get]
func (h *journalHandler) exportJournals(c *gin.Context) {
	entries, err := h.journalService.ListJournalEntries(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "export journal entries")
		return
	}
	slices.Reverse(entries)
	writeWorkbook(c, "journals.xlsx", func(w io.Writer) error {
		return spreadsheet.WriteJournals(w, entries)
	})
}

// importJournals godoc
// @Summary Import journal entries
// @Description Reads an .xlsx workbook, groups its rows by entry number and posts each group.
// @Description Lines with unknown account codes are skipped; entries that fail validation are reported and not posted.
// @Tags journals
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Workbook with Entry No, Date, Description, Account Code, Debit and Credit columns"
// @Success 200 {object} dto.ImportJournalsResponse
// @Failure 400 {object} map[string]string "Invalid workbook"
// @Failure 500 {object} map[string]string "Failed to import journal entries"
// @Security BearerAuth
// @Router /journals/import [post]
func (h *journalHandler) importJournals(c *gin.Context) {
	file, ok := openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	candidates, err := spreadsheet.ReadJournals(file)
	if err != nil {
		respondWithError(c, err, "read journals workbook")
		return
	}

	res, err := h.journalService.ImportJournalEntries(c.Request.Context(), candidates)
	if err != nil {
		respondWithError(c, err, "import journal entries")
		return
	}
	c.JSON(http.StatusOK, res)
}
