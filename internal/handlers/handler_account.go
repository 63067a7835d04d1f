package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/finstatements/internal/core/ports/services"
	"github.com/SscSPs/finstatements/internal/dto"
	"github.com/SscSPs/finstatements/internal/middleware"
	"github.com/SscSPs/finstatements/internal/spreadsheet"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/tree", h.getAccountTree)
		accounts.GET("/export", h.exportAccounts)
		accounts.POST("/import", h.importAccounts)
		accounts.GET("/:accountID/ancestors", h.getAncestors)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Adds an account to the chart under an existing parent, or at the top level when parentId is 0
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown parent"
// @Failure 409 {object} map[string]string "Account code already exists"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create account", slog.String("code", req.Code), slog.Int64("parent_id", req.ParentID))

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "create account")
		return
	}

	logger.Info("Account created successfully", slog.Int64("account_id", account.ID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the chart of accounts in insertion order, or only postable leaf accounts
// @Tags accounts
// @Produce  json
// @Param   leaf query bool false "Only leaf accounts"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), params.Leaf)
	if err != nil {
		respondWithError(c, err, "list accounts")
		return
	}

	logger.Debug("Accounts listed", slog.Int("count", len(accounts)), slog.Bool("leaf", params.Leaf))
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// getAccountTree godoc
// @Summary Get the account tree
// @Description Returns the chart of accounts nested from the top-level accounts down
// @Tags accounts
// @Produce  json
// @Success 200 {array} dto.AccountNodeResponse
// @Failure 500 {object} map[string]string "Failed to load account tree"
// @Security BearerAuth
// @Router /accounts/tree [get]
func (h *accountHandler) getAccountTree(c *gin.Context) {
	nodes, err := h.accountService.GetAccountTree(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "load account tree")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountTreeResponse(nodes))
}

// getAncestors godoc
// @Summary Get the ancestors of an account
// @Description Returns the parent chain of an account, nearest parent first
// @Tags accounts
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} map[string]string "Invalid account ID"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to load ancestors"
// @Security BearerAuth
// @Router /accounts/{accountID}/ancestors [get]
func (h *accountHandler) getAncestors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, err := strconv.ParseInt(c.Param("accountID"), 10, 64)
	if err != nil || accountID <= 0 {
		logger.Warn("Invalid account ID in path", slog.String("account_id", c.Param("accountID")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID"})
		return
	}

	ancestors, err := h.accountService.GetAncestors(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, err, "load ancestors")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(ancestors)})
}

// exportAccounts godoc
// @Summary Export the chart of accounts
// @Description Downloads the chart of accounts as an .xlsx workbook
// @Tags accounts
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} map[string]string "Failed to export accounts"
// @Security BearerAuth
// @Router /accounts/export [get]
func (h *accountHandler) exportAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts(c.Request.Context(), false)
	if err != nil {
		respondWithError(c, err, "export accounts")
		return
	}
	writeWorkbook(c, "accounts.xlsx", func(w io.Writer) error {
		return spreadsheet.WriteAccounts(w, accounts)
	})
}

// importAccounts godoc
// @Summary Import a chart of accounts
// @Description Loads accounts from an .xlsx workbook into an empty chart, keeping their ids
// @Tags accounts
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Workbook with ID, Code, Name and Parent ID columns"
// @Success 200 {object} map[string]int "Number of accounts imported"
// @Failure 400 {object} map[string]string "Invalid workbook or cyclic chart"
// @Failure 409 {object} map[string]string "Chart of accounts is not empty"
// @Failure 500 {object} map[string]string "Failed to import accounts"
// @Security BearerAuth
// @Router /accounts/import [post]
func (h *accountHandler) importAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	file, ok := openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	accounts, err := spreadsheet.ReadAccounts(file)
	if err != nil {
		respondWithError(c, err, "read accounts workbook")
		return
	}

	n, err := h.accountService.ImportAccounts(c.Request.Context(), accounts)
	if err != nil {
		respondWithError(c, err, "import accounts")
		return
	}
	if n == 0 && len(accounts) > 0 {
		logger.Warn("Account import refused, chart is not empty", slog.Int("rows", len(accounts)))
		c.JSON(http.StatusConflict, gin.H{"error": "chart of accounts is not empty"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": n})
}
