package utils

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneForWA(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare ten digits gets country code", "9876543210", "919876543210"},
		{"formatted number", "+91 98765-43210", "919876543210"},
		{"leading zero dropped", "09876543210", "9876543210"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhoneForWA(tt.raw))
		})
	}
}

func TestWALink(t *testing.T) {
	link := WALink("9876543210", "hello there")
	assert.Equal(t, "https://wa.me/919876543210?text=hello+there", link)

	noPhone := WALink("", "hi")
	assert.True(t, strings.HasPrefix(noPhone, "https://wa.me/?text="))
}

func TestBuildDueReminderMessage(t *testing.T) {
	msg := BuildDueReminderMessage(DueReminderOpts{
		SocietyName:  "Urmila Kunj Welfare Society",
		PeriodID:     "2025-03",
		Amount:       decimal.NewFromInt(500),
		DueDate:      "2025-03-10",
		FlatNo:       "A-101",
		ResidentName: "Asha",
		UPI:          "society@upi",
	})

	assert.Contains(t, msg, "*Urmila Kunj Welfare Society*")
	assert.Contains(t, msg, "Maintenance due reminder for *2025-03*")
	assert.Contains(t, msg, "Dear Asha,")
	assert.Contains(t, msg, "Flat: A-101")
	assert.Contains(t, msg, "Amount: ₹500")
	assert.Contains(t, msg, "UPI: society@upi")
	assert.Contains(t, msg, "— Thanks")
}

func TestBuildDueReminderMessage_DefaultNote(t *testing.T) {
	msg := BuildDueReminderMessage(DueReminderOpts{
		SocietyName: "Society",
		PeriodID:    "2025-03",
		Amount:      decimal.NewFromInt(500),
		FlatNo:      "B-2",
	})
	assert.Contains(t, msg, "Kindly complete the payment")
	assert.NotContains(t, msg, "Due date:")
}
