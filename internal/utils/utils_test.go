package utils

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	ctx := SetUserContext(context.Background(), 7, "user@example.com", "admin")

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, "user@example.com", GetUserEmailFromContext(ctx))
	assert.Equal(t, "admin", GetUserRoleFromContext(ctx))

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGuestContext(t *testing.T) {
	ctx := SetGuestContext(context.Background(), "guest-abc")
	assert.Equal(t, "guest-abc", GetGuestIDFromContext(ctx))
	assert.Equal(t, "", GetGuestIDFromContext(context.Background()))
}

func TestNormalizePhonePK(t *testing.T) {
	cases := map[string]string{
		"0300-1234567":    "+923001234567",
		"03001234567":     "+923001234567",
		"+92 300 1234567": "+923001234567",
		"3001234567":      "+923001234567",
		"":                "",
	}

	for in, want := range cases {
		assert.Equal(t, want, NormalizePhonePK(in), "input %q", in)
	}
}

func TestToUint(t *testing.T) {
	n, err := ToUint("42")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), n)

	_, err = ToUint("not-a-number")
	assert.Error(t, err)
}

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{8}-\d{6}-\d{4}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		num := GenerateOrderNumber()
		assert.Regexp(t, pattern, num)
		seen[num] = true
	}

	// collisions in 50 draws would indicate a broken random source
	assert.Greater(t, len(seen), 45)
}
