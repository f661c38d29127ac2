package models

import "testing"

func TestNormalizeDealStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"paid", DealStatusCompleted},
		{"Completed", DealStatusCompleted},
		{"pending", DealStatusActive},
		{"ACTIVE", DealStatusActive},
		{"negotiating", DealStatusNegotiating},
		{"lost", DealStatusLost},
		{"", DealStatusNew},
		{"whatever", DealStatusNew},
	}
	for _, tt := range tests {
		if got := NormalizeDealStatus(tt.in); got != tt.want {
			t.Errorf("NormalizeDealStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeInvoiceStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sent", InvoiceStatusSent},
		{"PAID", InvoiceStatusPaid},
		{" overdue ", InvoiceStatusOverdue},
		{"", InvoiceStatusDraft},
		{"draft", InvoiceStatusDraft},
	}
	for _, tt := range tests {
		if got := NormalizeInvoiceStatus(tt.in); got != tt.want {
			t.Errorf("NormalizeInvoiceStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
