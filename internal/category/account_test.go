package category

import (
	"testing"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

var testAccounts = []*domain.BankAccount{
	{ID: "acct-hdfc", Name: "HDFC Savings", Bank: "hdfc"},
	{ID: "acct-sbi", Name: "SBI Savings", Bank: "sbi"},
	{ID: "acct-bob", Name: "Baroda Current", Bank: "bob"},
}

func TestDetectBankAccount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "hdfc mention",
			text: "You've spent Rs.776.33 On HDFC Bank CREDIT Card xx0000",
			want: "acct-hdfc",
		},
		{
			name: "sbi suffix",
			text: "A/C X1234 debited by 500.0 trf to JOHN DOE Refno 1234. -SBI",
			want: "acct-sbi",
		},
		{
			name: "state bank phrase",
			text: "State Bank of India: your account was credited",
			want: "acct-sbi",
		},
		{
			name: "baroda full name",
			text: "Rs.500 debited from A/c ...1234. -Bank of Baroda",
			want: "acct-bob",
		},
		{
			name: "no bank mention",
			text: "INR 500.00 spent on Starbucks",
			want: "",
		},
		{
			name: "empty text",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectBankAccount(tt.text, testAccounts); got != tt.want {
				t.Errorf("DetectBankAccount(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectBankAccount_NoAccounts(t *testing.T) {
	if got := DetectBankAccount("HDFC Bank debit", nil); got != "" {
		t.Errorf("expected empty result without accounts, got %q", got)
	}
}

// An account with a bank key outside the fragment vocabulary still
// matches on the key itself.
func TestDetectBankAccount_UnknownBankKey(t *testing.T) {
	accounts := []*domain.BankAccount{
		{ID: "acct-x", Name: "X Bank", Bank: "xbank"},
	}
	if got := DetectBankAccount("Payment alert from XBANK services", accounts); got != "acct-x" {
		t.Errorf("expected acct-x, got %q", got)
	}
	if got := DetectBankAccount("Payment alert from elsewhere", accounts); got != "" {
		t.Errorf("expected no match, got %q", got)
	}
}
