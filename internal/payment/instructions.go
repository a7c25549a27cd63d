package payment

import "strings"

// ReceivingAccount is where a manual payment should be sent.
type ReceivingAccount struct {
	Title  string `json:"title"`
	Number string `json:"number"`
	Bank   string `json:"bank,omitempty"`
	IBAN   string `json:"iban,omitempty"`
}

// Static receiving accounts shown on the payment-instructions step and in
// confirmation emails.
var accountMap = map[Method]ReceivingAccount{
	MethodJazzCash: {
		Title:  "SUFI SHINE",
		Number: "0300-1234567",
	},
	MethodEasyPaisa: {
		Title:  "SUFI SHINE",
		Number: "0345-7654321",
	},
	MethodBankAccount: {
		Title:  "SUFI SHINE (PVT) LTD",
		Number: "0123-4567890123",
		Bank:   "Meezan Bank",
		IBAN:   "PK36MEZN0001234567890123",
	},
}

// AccountFor returns the receiving account for a manual method.
// The second result is false for cash_on_delivery and unknown methods.
func AccountFor(method Method) (ReceivingAccount, bool) {
	acc, ok := accountMap[method]
	return acc, ok
}

var instructionMap = map[Method][]string{
	MethodCashOnDelivery: {
		"Your order will be dispatched to the given address",
		"Keep {{amount}} in cash ready when the rider arrives",
		"Pay the rider the exact order total",
		"Collect your receipt from the rider",
	},

	MethodJazzCash: {
		"Open your JazzCash app or dial *786#",
		"Select Send Money → To Mobile Account",
		"Send {{amount}} to account {{account_number}} ({{account_title}})",
		"Note the transaction id (TID) from the confirmation SMS",
		"Submit the transaction id with order {{order_number}} to confirm your payment",
	},

	MethodEasyPaisa: {
		"Open your EasyPaisa app or dial *786#",
		"Select Send Money → EasyPaisa Account",
		"Send {{amount}} to account {{account_number}} ({{account_title}})",
		"Note the transaction id from the confirmation SMS",
		"Submit the transaction id with order {{order_number}} to confirm your payment",
	},

	MethodBankAccount: {
		"Transfer {{amount}} to {{account_title}}, account {{account_number}} ({{bank_name}})",
		"You can also use IBAN {{iban}} for online transfers",
		"Keep the transfer reference number",
		"Submit the reference number with order {{order_number}} to confirm your payment",
	},
}

// GetInstructions returns the customer steps for a method,
// with {{placeholders}} still in place.
func GetInstructions(method Method) []string {
	if steps, ok := instructionMap[method]; ok {
		return steps
	}

	return []string{
		"Follow the payment instructions shown on this page",
	}
}

type InstructionVars map[string]string

// InjectVariables substitutes {{key}} placeholders in every step.
// Unknown placeholders are left untouched.
func InjectVariables(steps []string, vars InstructionVars) []string {
	result := make([]string, 0, len(steps))

	for _, step := range steps {
		updated := step
		for key, value := range vars {
			updated = strings.ReplaceAll(
				updated,
				"{{"+key+"}}",
				value,
			)
		}
		result = append(result, updated)
	}

	return result
}

// InstructionsFor builds the fully substituted steps for an order.
func InstructionsFor(method Method, orderNumber, amount string) []string {
	vars := InstructionVars{
		"amount":       amount,
		"order_number": orderNumber,
	}

	if acc, ok := AccountFor(method); ok {
		vars["account_number"] = acc.Number
		vars["account_title"] = acc.Title
		vars["bank_name"] = acc.Bank
		vars["iban"] = acc.IBAN
	}

	return InjectVariables(GetInstructions(method), vars)
}
