package domain

import "testing"

func TestInvoiceStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to InvoiceStatus
		want     bool
	}{
		{InvoiceDraft, InvoiceSent, true},
		{InvoiceDraft, InvoiceCancelled, true},
		{InvoiceDraft, InvoicePaid, false},
		{InvoiceSent, InvoicePaid, true},
		{InvoiceSent, InvoiceCancelled, true},
		{InvoiceSent, InvoiceDraft, false},
		{InvoicePaid, InvoiceSent, false},
		{InvoicePaid, InvoiceCancelled, false},
		{InvoiceCancelled, InvoiceSent, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s → %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
