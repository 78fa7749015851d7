package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
	portssvc "github.com/orgledger/orgledger-backend/internal/core/ports/services"
	"github.com/orgledger/orgledger-backend/internal/dto"
	"github.com/orgledger/orgledger-backend/internal/middleware"
	"github.com/orgledger/orgledger-backend/pkg/config"
)

const maxAttachmentsPerTransaction = 5

// allowedAttachmentTypes is the upload MIME allowlist: receipt images and PDFs.
var allowedAttachmentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"application/pdf": true,
}

// transactionHandler handles transaction requests within the caller's organization.
type transactionHandler struct {
	transactionService portssvc.TransactionService
	uploadDir          string
	maxFileSize        int64
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionService, cfg *config.Config) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		uploadDir:          cfg.UploadDir,
		maxFileSize:        cfg.MaxFileSize,
	}
}

// registerTransactionRoutes registers transaction routes. Viewers can read;
// creating, updating and deleting requires a contributor role.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionService, cfg *config.Config) {
	h := newTransactionHandler(transactionService, cfg)

	contributors := middleware.RequireRole(domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.POST("", contributors, h.createTransaction)
		transactions.PUT("/:id", contributors, h.updateTransaction)
		transactions.DELETE("/:id", contributors, h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the organization's transactions, newest first, with optional type and date filters.
// @Tags transactions
// @Produce json
// @Param type query string false "Filter by type (INCOME or EXPENSE)"
// @Param startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	identity, ok := middleware.GetAuthFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var query dto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	txns, total, err := h.transactionService.ListTransactions(c.Request.Context(), identity.OrganizationID, query)
	if err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, total, query.Page, query.Limit))
}

// getTransaction godoc
// @Summary Get a transaction
// @Description Returns a single transaction with its attachments.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	identity, ok := middleware.GetAuthFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), identity.OrganizationID, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to fetch transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Records a transaction. Accepts multipart form data with up to 5 attachment files.
// @Tags transactions
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	identity, ok := middleware.GetAuthFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["attachments"]
	}
	if len(files) > maxAttachmentsPerTransaction {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("At most %d attachments are allowed per transaction", maxAttachmentsPerTransaction),
		})
		return
	}
	for _, fh := range files {
		if fh.Size > h.maxFileSize {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: fmt.Sprintf("File %q exceeds the %d byte size limit", fh.Filename, h.maxFileSize),
			})
			return
		}
		if !allowedAttachmentTypes[fh.Header.Get("Content-Type")] {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: fmt.Sprintf("File %q has an unsupported type; allowed: JPEG, PNG, GIF, PDF", fh.Filename),
			})
			return
		}
	}

	uploads, err := h.storeUploads(c, files)
	if err != nil {
		respondWithError(c, err, "Failed to store attachments")
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), identity.OrganizationID, identity.UserID, req, uploads)
	if err != nil {
		h.removeUploads(uploads)
		respondWithError(c, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// storeUploads writes the uploaded files to the upload directory under fresh
// unique names and returns their metadata. On any failure the files written
// so far are removed.
func (h *transactionHandler) storeUploads(c *gin.Context, files []*multipart.FileHeader) ([]dto.AttachmentUpload, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	uploads := make([]dto.AttachmentUpload, 0, len(files))
	for _, fh := range files {
		storedName := uuid.NewString() + filepath.Ext(fh.Filename)
		storedPath := filepath.Join(h.uploadDir, storedName)
		if err := c.SaveUploadedFile(fh, storedPath); err != nil {
			h.removeUploads(uploads)
			return nil, fmt.Errorf("failed to save uploaded file: %w", err)
		}
		uploads = append(uploads, dto.AttachmentUpload{
			Filename:     storedName,
			OriginalName: fh.Filename,
			MimeType:     fh.Header.Get("Content-Type"),
			Size:         fh.Size,
			Path:         storedPath,
		})
	}
	return uploads, nil
}

// removeUploads deletes stored files after a failed create so orphans do not
// accumulate in the upload directory.
func (h *transactionHandler) removeUploads(uploads []dto.AttachmentUpload) {
	for _, u := range uploads {
		_ = os.Remove(u.Path)
	}
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Updates fields of an existing transaction. Attachments are immutable here.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	identity, ok := middleware.GetAuthFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), identity.OrganizationID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deletes a transaction and its attachment rows.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	identity, ok := middleware.GetAuthFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), identity.OrganizationID, c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to delete transaction")
		return
	}

	c.Status(http.StatusNoContent)
}
