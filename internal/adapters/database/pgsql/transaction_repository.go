package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgledger/orgledger-backend/internal/apperrors"
	"github.com/orgledger/orgledger-backend/internal/core/domain"
	portsrepo "github.com/orgledger/orgledger-backend/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// NewTransactionRepository creates a new repository for transaction and attachment data.
func NewTransactionRepository(pool *pgxpool.Pool, timeout time.Duration) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool, Timeout: timeout},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// fullTransactionSelect joins the category so every returned row carries its
// category name; a deleted category leaves the name null.
const fullTransactionSelect = `
SELECT t."id", t."type", t."amount", t."currency", t."description", t."purpose",
	t."paymentMethod", t."payerPayee", t."recipientGiver", t."location",
	t."transactionDate", t."organizationId", t."createdById", t."categoryId",
	t."createdAt", t."updatedAt", c."name" AS "categoryName"
FROM "Transaction" t
LEFT JOIN "Category" c ON c."id" = t."categoryId"
`

const fullAttachmentSelect = `
SELECT a."id", a."filename", a."originalName", a."mimeType", a."size", a."path",
	a."transactionId", a."createdAt"
FROM "Attachment" a
`

func (r *PgxTransactionRepository) getTransactions(ctx context.Context, filterQuery string, args ...any) ([]domain.Transaction, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	rows, err := r.Pool.Query(ctx, fullTransactionSelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[domain.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Transaction{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect transaction rows", err)
	}
	return txns, nil
}

// attachAttachments loads the attachment rows for the given transactions in
// one query and distributes them onto the slice elements.
func (r *PgxTransactionRepository) attachAttachments(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	ids := make([]string, len(txns))
	index := make(map[string]*domain.Transaction, len(txns))
	for i := range txns {
		ids[i] = txns[i].TransactionID
		index[txns[i].TransactionID] = &txns[i]
	}

	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	rows, err := r.Pool.Query(ctx,
		fullAttachmentSelect+`WHERE a."transactionId" = ANY($1) ORDER BY a."createdAt" ASC`, ids)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query attachments", err)
	}
	defer rows.Close()

	attachments, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Attachment])
	if err != nil {
		return apperrors.NewAppError(500, "failed to collect attachment rows", err)
	}

	for _, a := range attachments {
		if txn, ok := index[a.TransactionID]; ok {
			txn.Attachments = append(txn.Attachments, a)
		}
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, organizationID, transactionID string) (*domain.Transaction, error) {
	txns, err := r.getTransactions(ctx,
		`WHERE t."id" = $1 AND t."organizationId" = $2`, transactionID, organizationID)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, apperrors.NewNotFoundError("transaction not found")
	}
	if err := r.attachAttachments(ctx, txns); err != nil {
		return nil, err
	}
	return &txns[0], nil
}

// buildFilterClause renders the tenant filter plus the optional type and
// inclusive date-range filters into a WHERE clause and its argument list.
func buildFilterClause(organizationID string, filter portsrepo.TransactionFilter) (string, []any) {
	clause := `WHERE t."organizationId" = $1`
	args := []any{organizationID}

	if filter.Type != nil {
		args = append(args, *filter.Type)
		clause += ` AND t."type" = $` + strconv.Itoa(len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		clause += ` AND t."transactionDate" >= $` + strconv.Itoa(len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		clause += ` AND t."transactionDate" <= $` + strconv.Itoa(len(args))
	}
	return clause, args
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, organizationID string, filter portsrepo.TransactionFilter, limit, offset int) ([]domain.Transaction, int64, error) {
	clause, args := buildFilterClause(organizationID, filter)

	var total int64
	countCtx, cancel := r.queryCtx(ctx)
	err := r.Pool.QueryRow(countCtx, `SELECT COUNT(*) FROM "Transaction" t `+clause, args...).Scan(&total)
	cancel()
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count transactions", err)
	}

	pageArgs := append(args, limit, offset)
	pageClause := clause +
		` ORDER BY t."transactionDate" DESC` +
		` LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)

	txns, err := r.getTransactions(ctx, pageClause, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	if err := r.attachAttachments(ctx, txns); err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

func (r *PgxTransactionRepository) FindTransactionsInWindow(ctx context.Context, organizationID string, window domain.PeriodWindow) ([]domain.Transaction, error) {
	return r.getTransactions(ctx,
		`WHERE t."organizationId" = $1 AND t."transactionDate" >= $2 AND t."transactionDate" <= $3 ORDER BY t."transactionDate" DESC`,
		organizationID, window.Start, window.End)
}

// SaveTransaction inserts the transaction row and its attachment rows inside
// one database transaction; either both are visible afterwards or neither.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, attachments []domain.Attachment) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	txnQuery := `
		INSERT INTO "Transaction" (
			"id", "type", "amount", "currency", "description", "purpose",
			"paymentMethod", "payerPayee", "recipientGiver", "location",
			"transactionDate", "organizationId", "createdById", "categoryId",
			"createdAt", "updatedAt"
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, txnQuery,
		txn.TransactionID,
		txn.Type,
		txn.Amount,
		txn.Currency,
		txn.Description,
		txn.Purpose,
		txn.PaymentMethod,
		txn.PayerPayee,
		txn.RecipientGiver,
		txn.Location,
		txn.TransactionDate,
		txn.OrganizationID,
		txn.CreatedByID,
		txn.CategoryID,
		txn.CreatedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("referenced category or user does not exist")
		}
		return apperrors.NewAppError(500, "failed to save transaction "+txn.TransactionID, err)
	}

	if len(attachments) > 0 {
		batch := &pgx.Batch{}
		attQuery := `
			INSERT INTO "Attachment" ("id", "filename", "originalName", "mimeType", "size", "path", "transactionId", "createdAt")
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
		`
		for _, a := range attachments {
			batch.Queue(attQuery,
				a.AttachmentID,
				a.Filename,
				a.OriginalName,
				a.MimeType,
				a.Size,
				a.Path,
				txn.TransactionID,
				a.CreatedAt,
			)
		}
		br := tx.SendBatch(ctx, batch)
		for range attachments {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return apperrors.NewAppError(500, "failed to save attachments for transaction "+txn.TransactionID, err)
			}
		}
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to flush attachment batch", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		UPDATE "Transaction"
		SET "amount" = $1, "currency" = $2, "description" = $3, "purpose" = $4,
			"paymentMethod" = $5, "payerPayee" = $6, "recipientGiver" = $7,
			"location" = $8, "transactionDate" = $9, "categoryId" = $10, "updatedAt" = $11
		WHERE "id" = $12 AND "organizationId" = $13;
	`
	result, err := r.Pool.Exec(ctx, query,
		txn.Amount,
		txn.Currency,
		txn.Description,
		txn.Purpose,
		txn.PaymentMethod,
		txn.PayerPayee,
		txn.RecipientGiver,
		txn.Location,
		txn.TransactionDate,
		txn.CategoryID,
		txn.UpdatedAt,
		txn.TransactionID,
		txn.OrganizationID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("referenced category does not exist")
		}
		return apperrors.NewAppError(500, "failed to update transaction "+txn.TransactionID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction not found")
	}
	return nil
}

// DeleteTransaction removes the transaction; the schema cascades to its attachments.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, organizationID, transactionID string) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	result, err := r.Pool.Exec(ctx,
		`DELETE FROM "Transaction" WHERE "id" = $1 AND "organizationId" = $2`,
		transactionID, organizationID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction not found")
	}
	return nil
}
