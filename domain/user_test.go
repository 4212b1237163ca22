package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCompleteProfile(t *testing.T) {
	u := User{RoleplayName: "Gordon Freeman", PhoneNumber: "555-0100", BankNumber: "1234567890"}
	assert.True(t, u.HasCompleteProfile())

	u.PhoneNumber = ""
	assert.False(t, u.HasCompleteProfile())
}

func TestBuyerNameFallsBackToDisplayName(t *testing.T) {
	u := User{DisplayName: "gordon", RoleplayName: "Gordon Freeman"}
	assert.Equal(t, "Gordon Freeman", u.BuyerName())

	u.RoleplayName = ""
	assert.Equal(t, "gordon", u.BuyerName())
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled} {
		assert.True(t, ValidOrderStatus(s), s)
	}

	assert.False(t, ValidOrderStatus("shipped"))
	assert.False(t, ValidOrderStatus(""))
	assert.False(t, ValidOrderStatus("PENDING"))
}
