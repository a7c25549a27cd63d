package payment

import (
	"errors"
	"strings"
)

// Method is the closed set of payment options offered at checkout.
type Method string

const (
	MethodCashOnDelivery Method = "cash_on_delivery"
	MethodJazzCash       Method = "jazzcash"
	MethodEasyPaisa      Method = "easypaisa"
	MethodBankAccount    Method = "bank_account"
)

// Methods lists every accepted method in display order.
var Methods = []Method{
	MethodCashOnDelivery,
	MethodJazzCash,
	MethodEasyPaisa,
	MethodBankAccount,
}

var ErrUnknownMethod = errors.New("unknown payment method")

// Manual reports whether payment is confirmed out-of-band by the customer
// supplying a transaction id, rather than collected on delivery.
func (m Method) Manual() bool {
	switch m {
	case MethodJazzCash, MethodEasyPaisa, MethodBankAccount:
		return true
	}
	return false
}

// WaivesShipping reports whether choosing this method zeroes the shipping
// charge. Promotional policy: every manual method ships free.
func (m Method) WaivesShipping() bool {
	return m.Manual()
}

func (m Method) String() string {
	return string(m)
}

// Label returns the customer-facing name of the method.
func (m Method) Label() string {
	switch m {
	case MethodCashOnDelivery:
		return "Cash on Delivery"
	case MethodJazzCash:
		return "JazzCash"
	case MethodEasyPaisa:
		return "EasyPaisa"
	case MethodBankAccount:
		return "Bank Transfer"
	}
	return string(m)
}

func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case MethodCashOnDelivery:
		return MethodCashOnDelivery, nil
	case MethodJazzCash:
		return MethodJazzCash, nil
	case MethodEasyPaisa:
		return MethodEasyPaisa, nil
	case MethodBankAccount:
		return MethodBankAccount, nil
	}
	return "", ErrUnknownMethod
}
