package service

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	tunggakan "kaskelas_backend/internals/features/kas/tunggakan/service"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah: 8000 → "Rp8.000".
func FormatRupiah(n int64) string {
	if n < 0 {
		return "-" + idPrinter.Sprintf("Rp%d", -n)
	}
	return idPrinter.Sprintf("Rp%d", n)
}

func BuildReminderMessage(c tunggakan.ReminderCandidate, className string) string {
	return fmt.Sprintf(
		"Halo %s, ini pengingat kas %s.\n"+
			"Tunggakan kas kamu saat ini %s (%d minggu).\n"+
			"Mohon segera dibayarkan ke bendahara kelas ya. Terima kasih 🙏",
		c.Name, className, FormatRupiah(c.AmountOwed), c.WeeksLate,
	)
}
