package view

import (
	"strings"
	"time"
	"unicode/utf8"

	"billed/internal/newbill"
)

var frenchMonths = [...]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

// FormatDate renders a yyyy-mm-dd date as "4 Avr. 04". Unparsable dates are
// returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	month := frenchMonths[t.Month()-1]
	short := month
	if utf8.RuneCountInString(month) > 3 {
		short = string([]rune(month)[:3])
	}
	r, size := utf8.DecodeRuneInString(short)
	short = strings.ToUpper(string(r)) + short[size:]
	return t.Format("2") + " " + short + ". " + t.Format("06")
}

func FormatStatus(status newbill.BillStatus) string {
	switch status {
	case newbill.StatusPending:
		return "En attente"
	case newbill.StatusAccepted:
		return "Accepté"
	case newbill.StatusRefused:
		return "Refused"
	default:
		return string(status)
	}
}
