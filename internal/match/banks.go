package match

import (
	"regexp"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

// Each matcher below owns one bank template family. Debit and credit
// grammars are separate matchers because a grammar implies a fixed
// direction; direction is never inferred from keywords inside a
// bank-specific matcher.

var hdfcDebit = &Matcher{
	Name: "hdfc-debit",
	Bank: "hdfc",
	Gate: func(t string) bool {
		return containsAny(t, "hdfc") && containsAny(t, "debited", "spent", "sent")
	},
	Extract: directional("hdfc", domain.TxExpense,
		// You've spent Rs.776.33 On HDFC Bank CREDIT Card xx0000 At NHPS CC On 2022-12-30:20:41:47 Avl bal: Rs.45268.24
		regexp.MustCompile(`(?i)spent\s+Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+On\s+HDFC\s+Bank.*?Card\s+\S+\s+At\s+(?P<to>.+?)\s+On\s+[\d:.-]+(?:.*?Avl\s+bal:?\s*Rs\.?\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
		// Rs.500.00 debited from a/c **1234 on 05-09-25 to VPA swiggy@icici (UPI Ref No 524311223344)
		regexp.MustCompile(`(?i)Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+(?:is\s+)?debited\s+from\s+(?:your\s+)?(?:a/c|acct|account)\s+\S+\s+(?:on\s+\S+\s+)?(?:to|towards)\s+(?:VPA\s+)?(?P<to>[^(.]+)`),
		// Sent Rs.200.00 From HDFC Bank A/C *1234 To Zomato On 05/09/25
		regexp.MustCompile(`(?i)Sent\s+Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+From\s+HDFC\s+Bank\s+A/C\s+\S+\s+To\s+(?P<to>.+?)\s+On\s`),
	),
}

var hdfcCredit = &Matcher{
	Name: "hdfc-credit",
	Bank: "hdfc",
	Gate: func(t string) bool {
		return containsAny(t, "hdfc") && containsAny(t, "credited", "deposited", "received")
	},
	Extract: directional("hdfc", domain.TxIncome,
		// Rs.2000.00 credited to a/c **1234 on 05-09-25 by a/c linked to VPA john@okaxis (UPI Ref No 524311223344)
		regexp.MustCompile(`(?i)Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+(?:is\s+)?(?:credited|deposited)\s+(?:to|in)\s+(?:your\s+)?(?:a/c|acct|account)\s+\S+[^.]*?(?:by|from)\s+(?:a/c\s+linked\s+to\s+VPA\s+)?(?P<to>[^(.]+)`),
	),
}

var iciciDebit = &Matcher{
	Name: "icici-debit",
	Bank: "icici",
	Gate: func(t string) bool {
		return containsAny(t, "icici") && containsAny(t, "spent", "debited")
	},
	Extract: directional("icici", domain.TxExpense,
		// INR 232.42 spent on ICICI Bank Card XX0000 on 04-Mar-23 at ONE97 COMMUNICA. Avl Lmt: INR 1,23,456.28.
		regexp.MustCompile(`(?i)INR\s+(?P<amount>[\d,]+(?:\.\d+)?)\s+spent\s+on\s+ICICI\s+Bank\s+Card\s+\S+\s+on\s+\S+\s+at\s+(?P<to>.+?)\.(?:\s*Avl\s+Lmt:?\s*INR\s+(?P<balance>[\d,]+(?:\.\d+)?))?`),
		// ICICI Bank Acct XX123 debited for Rs 200.00 on 05-Sep-25; JOHN DOE credited. UPI:524311223344
		regexp.MustCompile(`(?i)ICICI\s+Bank\s+Acct\s+\S+\s+debited\s+(?:for|with)\s+Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+\S+?[;.]\s*(?P<to>[^.;]+?)\s+credited`),
	),
}

var iciciCredit = &Matcher{
	Name: "icici-credit",
	Bank: "icici",
	Gate: func(t string) bool {
		return containsAny(t, "icici") && containsAny(t, "credited")
	},
	Extract: directional("icici", domain.TxIncome,
		// Your ICICI Bank Account XX1234 has been credited with INR 5,000.00 on 05-Sep-25 by John Doe.
		regexp.MustCompile(`(?i)ICICI\s+Bank\s+(?:Account|Acct|A/c)\s+\S+\s+(?:has\s+been\s+|is\s+)?credited\s+with\s+(?:INR|Rs\.?)\s*(?P<amount>[\d,]+(?:\.\d+)?)(?:\s+on\s+\S+)?(?:\s+(?:by|from)\s+(?P<to>[^.(]+))?`),
	),
}

var sbiDebit = &Matcher{
	Name: "sbi-debit",
	Bank: "sbi",
	Gate: func(t string) bool {
		return containsAny(t, "sbi", "state bank") && containsAny(t, "debited")
	},
	Extract: directional("sbi", domain.TxExpense,
		// Dear UPI user A/C X1234 debited by 500.0 on date 05Sep25 trf to JOHN DOE Refno 524311223344. -SBI
		regexp.MustCompile(`(?i)A/C\s+\S+\s+debited\s+by\s+(?:Rs\.?\s*|INR\s+)?(?P<amount>[\d,]+(?:\.\d+)?)\s+on\s+(?:date\s+)?\S+\s+trf\s+to\s+(?P<to>.+?)(?:\s+Refno|\s+Ref\s+No|\.|$)`),
		// Rs.500 debited from A/c XX1234 on 05Sep25 transfer to John Ref No 123456 -SBI
		regexp.MustCompile(`(?i)Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited\s+from\s+(?:your\s+)?A/c\s+\S+.*?(?:transfer|trf)\s+to\s+(?P<to>.+?)(?:\s+Ref|\.|$)`),
	),
}

var sbiCredit = &Matcher{
	Name: "sbi-credit",
	Bank: "sbi",
	Gate: func(t string) bool {
		return containsAny(t, "sbi", "state bank") && containsAny(t, "credited")
	},
	Extract: directional("sbi", domain.TxIncome,
		// Dear SBI User, your A/c X1234-credited by Rs.2000 on 05Sep25 transfer from JOHN DOE Ref No 123456 -SBI
		regexp.MustCompile(`(?i)credited\s+by\s+(?:Rs\.?\s*|INR\s+)?(?P<amount>[\d,]+(?:\.\d+)?)(?:\s+on\s+\S+)?(?:\s+(?:transfer\s+from|trf\s+from|by)\s+(?P<to>.+?)(?:\s+Ref|\.|$))?`),
	),
}

var axisDebit = &Matcher{
	Name: "axis-debit",
	Bank: "axis",
	Gate: func(t string) bool {
		return containsAny(t, "axis") && containsAny(t, "spent", "debited")
	},
	Extract: directional("axis", domain.TxExpense,
		// Spent Card no. XX0000 INR 1579 13-12-22 19:57:25 ABCDEFG IND Avl Lmt INR 123456.05 - Axis Bank
		regexp.MustCompile(`(?i)Spent\s+Card\s+no\.\s+\S+\s+INR\s+(?P<amount>[\d,]+(?:\.\d+)?)\s+[\d-]+\s+[\d:]+\s+(?P<to>.+?)\s+Avl\s+Lmt\s+INR\s+(?P<balance>[\d,]+(?:\.\d+)?)`),
		// INR 500.00 debited A/c no. XX1234 05-09-25 UPI/P2M/524311223344/Starbucks Avl Bal INR 15,000.00 - Axis Bank
		regexp.MustCompile(`(?i)INR\s+(?P<amount>[\d,]+(?:\.\d+)?)\s+debited\s+A/c\s+no\.\s+\S+\s+\S+\s+UPI/\w+/\w+/(?P<to>\S+)(?:\s+Avl\s+Bal\s+INR\s+(?P<balance>[\d,]+(?:\.\d+)?))?`),
	),
}

var axisCredit = &Matcher{
	Name: "axis-credit",
	Bank: "axis",
	Gate: func(t string) bool {
		return containsAny(t, "axis") && containsAny(t, "credited")
	},
	Extract: directional("axis", domain.TxIncome,
		// INR 2,000.00 credited to A/c no. XX1234 on 05-09-25 Info: UPI/P2A/524311223344/JOHN DOE. Avl Bal INR 17,000.00 - Axis Bank
		regexp.MustCompile(`(?i)INR\s+(?P<amount>[\d,]+(?:\.\d+)?)\s+credited\s+to\s+A/c\s+no\.\s+\S+(?:\s+on\s+\S+)?(?:\s+Info:?\s*UPI/\w+/\w+/(?P<to>[^.]+))?(?:.*?Avl\s+Bal\s+INR\s+(?P<balance>[\d,]+(?:\.\d+)?))?`),
	),
}

var kotakDebit = &Matcher{
	Name: "kotak-debit",
	Bank: "kotak",
	Gate: func(t string) bool {
		return containsAny(t, "kotak") && containsAny(t, "sent", "debited")
	},
	Extract: directional("kotak", domain.TxExpense,
		// Sent Rs.500.00 from Kotak Bank AC X1234 to swiggy@icici on 05-09-25.UPI Ref 524311223344.
		regexp.MustCompile(`(?i)Sent\s+Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+from\s+Kotak\s+Bank\s+AC\s+\S+\s+to\s+(?P<to>\S+)\s+on\s`),
		regexp.MustCompile(`(?i)Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited\s+from\s+Kotak\s+Bank\s+AC\s+\S+\s+(?:to|towards)\s+(?P<to>\S+)`),
	),
}

var kotakCredit = &Matcher{
	Name: "kotak-credit",
	Bank: "kotak",
	Gate: func(t string) bool {
		return containsAny(t, "kotak") && containsAny(t, "received", "credited")
	},
	Extract: directional("kotak", domain.TxIncome,
		// Received Rs.2000.00 in your Kotak Bank AC X1234 from john@okaxis on 05-09-25.
		regexp.MustCompile(`(?i)Received\s+Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+in\s+your\s+Kotak\s+Bank\s+AC\s+\S+\s+from\s+(?P<to>\S+)`),
	),
}

var barodaDebit = &Matcher{
	Name: "baroda-debit",
	Bank: "bob",
	Gate: func(t string) bool {
		return containsAny(t, "baroda", "-bob") && containsAny(t, "debited")
	},
	Extract: directional("bob", domain.TxExpense,
		// Rs.500 debited from A/c ...1234 and credited to swiggy@icici via UPI Ref No 524311223344. -Bank of Baroda
		regexp.MustCompile(`(?i)Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited\s+from\s+A/c\s+\S+\s+and\s+credited\s+to\s+(?P<to>\S+)`),
	),
}

var barodaCredit = &Matcher{
	Name: "baroda-credit",
	Bank: "bob",
	Gate: func(t string) bool {
		return containsAny(t, "baroda", "-bob") && containsAny(t, "credited")
	},
	Extract: directional("bob", domain.TxIncome,
		// Rs.2000 Credited to A/c ...1234 thru UPI by john@okhdfc. Total Bal:Rs.17000CR. -Bank of Baroda
		regexp.MustCompile(`(?i)Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+Credited\s+to\s+A/c\s+\S+(?:\s+thru\s+UPI)?\s+by\s+(?P<to>\S+?)\.(?:\s*Total\s+Bal:?\s*Rs\.?\s*(?P<balance>[\d,]+(?:\.\d+)?))?`),
	),
}

var federalDebit = &Matcher{
	Name: "federal-debit",
	Bank: "federal",
	Gate: func(t string) bool {
		return containsAny(t, "federal") && containsAny(t, "debited")
	},
	Extract: directional("federal", domain.TxExpense,
		// Rs 706.82 debited from your A/c using UPI on 07-03-2023 19:57:24 to VPA godaddy.cca@hdfcbank - (UPI Ref No 300000882989)-Federal Bank
		regexp.MustCompile(`(?i)Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited\s+from\s+your\s+A/c\s+using\s+UPI\s+on\s+\S+\s+\S+\s+(?:to|and)\s+VPA\s+(?P<to>\S+)`),
	),
}

var federalCredit = &Matcher{
	Name: "federal-credit",
	Bank: "federal",
	Gate: func(t string) bool {
		return containsAny(t, "federal") && containsAny(t, "received", "credited")
	},
	Extract: directional("federal", domain.TxIncome,
		// Amit, you've received INR 9,000.00 in your Account XXXXXXXX1234. Woohoo! It was sent by 0111 on January 17, 2023. -Federal Bank
		regexp.MustCompile(`(?i)you've\s+received\s+INR\s+(?P<amount>[\d,]+(?:\.\d+)?)\s+in\s+your\s+Account\s+\S+(?:.*?sent\s+by\s+(?P<to>\w+))?`),
	),
}

// The generic UPI matchers handle rail-level templates that carry no bank
// branding. Their gate refuses any text that names a known bank, so they
// can never shadow a bank-specific grammar.

var upiDebit = &Matcher{
	Name: "upi-debit",
	Bank: "",
	Gate: func(t string) bool {
		return containsAny(t, "upi", "vpa") && !mentionsKnownBank(t) &&
			containsAny(t, "debited", "paid", "sent")
	},
	Extract: directional("", domain.TxExpense,
		// Paid Rs.150.00 to merchant@upi via UPI. Ref 524311223344.
		regexp.MustCompile(`(?i)(?:Paid|Sent)\s+Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+to\s+(?P<to>\S+)`),
		regexp.MustCompile(`(?i)Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+debited(?:\s+from\s+\S+)?\s+(?:to|towards)\s+(?:VPA\s+)?(?P<to>\S+)`),
	),
}

var upiCredit = &Matcher{
	Name: "upi-credit",
	Bank: "",
	Gate: func(t string) bool {
		return containsAny(t, "upi", "vpa") && !mentionsKnownBank(t) &&
			containsAny(t, "credited", "received")
	},
	Extract: directional("", domain.TxIncome,
		// Received Rs.2000.00 from john@ybl via UPI. Ref 524311223344.
		regexp.MustCompile(`(?i)Received\s+Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+from\s+(?P<to>\S+)`),
		regexp.MustCompile(`(?i)Rs\.?\s*(?P<amount>[\d,]+(?:\.\d+)?)\s+credited(?:\s+to\s+\S+)?\s+(?:from|by)\s+(?:VPA\s+)?(?P<to>\S+)`),
	),
}
