package utils

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// DueReminderOpts carries the pieces of a dues reminder message.
type DueReminderOpts struct {
	SocietyName  string
	PeriodID     string
	Amount       decimal.Decimal
	DueDate      string
	FlatNo       string
	ResidentName string
	UPI          string
	Note         string
}

// BuildDueReminderMessage renders the WhatsApp reminder text for a flat
// with pending dues. Formatting follows the house style the committee
// already sends by hand, bold markers included.
func BuildDueReminderMessage(opts DueReminderOpts) string {
	lines := []string{
		fmt.Sprintf("*%s*", opts.SocietyName),
		fmt.Sprintf("Maintenance due reminder for *%s*", opts.PeriodID),
	}
	if opts.ResidentName != "" {
		lines = append(lines, fmt.Sprintf("Dear %s,", opts.ResidentName))
	}
	lines = append(lines,
		fmt.Sprintf("Flat: %s", opts.FlatNo),
		fmt.Sprintf("Amount: ₹%s", opts.Amount.StringFixed(0)),
	)
	if opts.DueDate != "" {
		lines = append(lines, fmt.Sprintf("Due date: %s", opts.DueDate))
	}
	if opts.UPI != "" {
		lines = append(lines, fmt.Sprintf("UPI: %s", opts.UPI))
	}
	note := opts.Note
	if note == "" {
		note = "Kindly complete the payment at the earliest and reply with the reference."
	}
	lines = append(lines, note, "— Thanks")
	return strings.Join(lines, "\n")
}

// NormalizePhoneForWA strips a raw phone number down to digits and
// prefixes the default country code for bare 10-digit Indian numbers.
func NormalizePhoneForWA(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	switch {
	case len(digits) == 10:
		return "91" + digits
	case (len(digits) == 11 || len(digits) == 12) && strings.HasPrefix(digits, "0"):
		return digits[1:]
	default:
		return digits
	}
}

// WALink builds a wa.me deep link with the message prefilled. An empty
// phone yields a recipient-less share link.
func WALink(phone, text string) string {
	to := NormalizePhoneForWA(phone)
	msg := url.QueryEscape(text)
	if to == "" {
		return fmt.Sprintf("https://wa.me/?text=%s", msg)
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", to, msg)
}
