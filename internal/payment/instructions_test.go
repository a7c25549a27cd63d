package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInstructions(t *testing.T) {
	t.Run("ReturnsTemplateForKnownMethod", func(t *testing.T) {
		instructions := GetInstructions(MethodJazzCash)
		assert.NotEmpty(t, instructions)

		found := false
		for _, instr := range instructions {
			if strings.Contains(instr, "{{account_number}}") {
				found = true
				break
			}
		}
		assert.True(t, found, "Instructions should contain {{account_number}} placeholder")
	})

	t.Run("ReturnsDefaultForUnknown", func(t *testing.T) {
		instructions := GetInstructions(Method("SOME_WALLET"))
		assert.Len(t, instructions, 1)
	})
}

func TestInjectVariables(t *testing.T) {
	t.Run("ReplacesPlaceholders", func(t *testing.T) {
		template := []string{"Send {{amount}} to account {{account_number}}."}
		vars := InstructionVars{
			"amount":         "Rs 1,700",
			"account_number": "0300-1234567",
		}

		expected := []string{"Send Rs 1,700 to account 0300-1234567."}
		result := InjectVariables(template, vars)

		assert.Equal(t, expected, result)
	})

	t.Run("HandlesMissingVariables", func(t *testing.T) {
		template := []string{"Pay {{amount}}"}
		result := InjectVariables(template, InstructionVars{})

		// unknown placeholders stay as-is
		assert.Equal(t, template, result)
	})
}

func TestInstructionsFor(t *testing.T) {
	steps := InstructionsFor(MethodEasyPaisa, "ORD-20260830-101500-0042", "Rs 1,500")

	joined := strings.Join(steps, "\n")
	assert.Contains(t, joined, "Rs 1,500")
	assert.Contains(t, joined, "0345-7654321")
	assert.Contains(t, joined, "ORD-20260830-101500-0042")
	assert.NotContains(t, joined, "{{")
}

func TestAccountFor(t *testing.T) {
	acc, ok := AccountFor(MethodBankAccount)
	assert.True(t, ok)
	assert.NotEmpty(t, acc.IBAN)

	_, ok = AccountFor(MethodCashOnDelivery)
	assert.False(t, ok)
}
