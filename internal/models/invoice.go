package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Invoice statuses
const (
	InvoiceStatusDraft   = "DRAFT"
	InvoiceStatusSent    = "SENT"
	InvoiceStatusPaid    = "PAID"
	InvoiceStatusOverdue = "OVERDUE"
)

// NormalizeInvoiceStatus maps free-form client input onto the invoice enum.
// Unknown values fall back to DRAFT.
func NormalizeInvoiceStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sent":
		return InvoiceStatusSent
	case "paid":
		return InvoiceStatusPaid
	case "overdue":
		return InvoiceStatusOverdue
	default:
		return InvoiceStatusDraft
	}
}

type Invoice struct {
	ID            uuid.UUID  `json:"id"`
	CreatorID     uuid.UUID  `json:"creator_id"`
	DealID        *uuid.UUID `json:"deal_id,omitempty"`
	InvoiceNumber string     `json:"invoice_number"`
	IssueDate     time.Time  `json:"issue_date"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	Status        string     `json:"status"`
	ClientName    *string    `json:"client_name,omitempty"`
	ClientEmail   *string    `json:"client_email,omitempty"`
	ClientCompany *string    `json:"client_company,omitempty"`
	ClientAddress *string    `json:"client_address,omitempty"`
	ClientTaxID   *string    `json:"client_tax_id,omitempty"`
	PaymentTerms  *string    `json:"payment_terms,omitempty"`
	Currency      string     `json:"currency"`
	Subtotal      *float64   `json:"subtotal,omitempty"`
	Tax           *float64   `json:"tax,omitempty"`
	Total         *float64   `json:"total,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type InvoiceItem struct {
	ID          uuid.UUID `json:"id"`
	InvoiceID   uuid.UUID `json:"invoice_id"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Total       float64   `json:"total"`
}

type InvoiceWithItems struct {
	Invoice
	Items []InvoiceItem `json:"items"`
}
