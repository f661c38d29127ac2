package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRepo struct {
	pool *pgxpool.Pool
}

func NewInvoiceRepo(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

const invoiceColumns = `
	id, creator_id, deal_id, invoice_number, issue_date, due_date, status,
	client_name, client_email, client_company, client_address, client_tax_id,
	payment_terms, currency, subtotal, tax, total, notes, created_at, updated_at`

func scanInvoice(row interface{ Scan(...any) error }, inv *models.Invoice) error {
	return row.Scan(&inv.ID, &inv.CreatorID, &inv.DealID, &inv.InvoiceNumber,
		&inv.IssueDate, &inv.DueDate, &inv.Status, &inv.ClientName, &inv.ClientEmail,
		&inv.ClientCompany, &inv.ClientAddress, &inv.ClientTaxID, &inv.PaymentTerms,
		&inv.Currency, &inv.Subtotal, &inv.Tax, &inv.Total, &inv.Notes,
		&inv.CreatedAt, &inv.UpdatedAt)
}

// Create writes the invoice and its line items in one transaction.
func (r *InvoiceRepo) Create(ctx context.Context, inv *models.Invoice, items []models.InvoiceItem) ([]models.InvoiceItem, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO invoices (creator_id, deal_id, invoice_number, issue_date,
			due_date, status, client_name, client_email, client_company,
			client_address, client_tax_id, payment_terms, currency,
			subtotal, tax, total, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at
	`, inv.CreatorID, inv.DealID, inv.InvoiceNumber, inv.IssueDate,
		inv.DueDate, inv.Status, inv.ClientName, inv.ClientEmail, inv.ClientCompany,
		inv.ClientAddress, inv.ClientTaxID, inv.PaymentTerms, inv.Currency,
		inv.Subtotal, inv.Tax, inv.Total, inv.Notes,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, conflict(err, "invoice number %s already used", inv.InvoiceNumber)
	}

	out := make([]models.InvoiceItem, 0, len(items))
	for _, item := range items {
		item.InvoiceID = inv.ID
		item.Total = item.Quantity * item.UnitPrice
		if err := tx.QueryRow(ctx, `
			INSERT INTO invoice_items (invoice_id, description, quantity, unit_price, total)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, item.InvoiceID, item.Description, item.Quantity, item.UnitPrice, item.Total,
		).Scan(&item.ID); err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.InvoiceWithItems, error) {
	var inv models.InvoiceWithItems
	err := scanInvoice(r.pool.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id), &inv.Invoice)
	if err != nil {
		return nil, notFound(err, "invoice %s", id)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, invoice_id, description, quantity, unit_price, total
		FROM invoice_items WHERE invoice_id = $1 ORDER BY id
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.InvoiceItem
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.Description,
			&item.Quantity, &item.UnitPrice, &item.Total); err != nil {
			return nil, err
		}
		inv.Items = append(inv.Items, item)
	}
	return &inv, rows.Err()
}

func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE invoices SET status = $1, updated_at = now() WHERE id = $2
		RETURNING id
	`, status, id).Scan(&id)
	return notFound(err, "invoice %s", id)
}

func (r *InvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	return err
}

type InvoiceFilter struct {
	CreatorID uuid.UUID
	Status    *string
	Limit     int
	Offset    int
}

func (r *InvoiceRepo) List(ctx context.Context, f InvoiceFilter) ([]models.Invoice, int, error) {
	where := []string{"creator_id = $1"}
	args := []any{f.CreatorID}
	argIdx := 2

	if f.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *f.Status)
		argIdx++
	}
	cond := " WHERE " + strings.Join(where, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM invoices"+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + invoiceColumns + ` FROM invoices` + cond +
		fmt.Sprintf(" ORDER BY issue_date DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, clampLimit(f.Limit), f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var invoices []models.Invoice
	for rows.Next() {
		var inv models.Invoice
		if err := scanInvoice(rows, &inv); err != nil {
			return nil, 0, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, total, rows.Err()
}

// MarkOverdue flips SENT invoices past their due date to OVERDUE and
// returns how many changed. Called by the background worker.
func (r *InvoiceRepo) MarkOverdue(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE invoices SET status = $1, updated_at = now()
		WHERE status = $2 AND due_date IS NOT NULL AND due_date < now()
	`, models.InvoiceStatusOverdue, models.InvoiceStatusSent)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
