package handlers

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/SscSPs/finstatements/internal/middleware"
	"github.com/SscSPs/finstatements/internal/spreadsheet"
	"github.com/gin-gonic/gin"
)

// uploadField is the multipart field carrying an uploaded workbook.
const uploadField = "file"

// writeWorkbook renders a workbook in memory and sends it as an attachment,
// so a failed render still produces a clean error response.
func writeWorkbook(c *gin.Context, filename string, write func(io.Writer) error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		respondWithError(c, err, "build workbook")
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, spreadsheet.ContentType, buf.Bytes())
}

// openUpload opens the uploaded .xlsx file, answering 400 itself when there is none.
func openUpload(c *gin.Context) (multipart.File, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	header, err := c.FormFile(uploadField)
	if err != nil {
		logger.Warn("Workbook upload missing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "a workbook must be uploaded in the \"file\" field"})
		return nil, false
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		logger.Warn("Rejected upload with wrong extension", slog.String("filename", header.Filename))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file type: only .xlsx files are allowed"})
		return nil, false
	}

	file, err := header.Open()
	if err != nil {
		logger.Error("Failed to open uploaded workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return nil, false
	}
	return file, true
}
