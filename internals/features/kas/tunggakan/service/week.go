// Package service berisi mesin hitung kas: pemetaan minggu dan tunggakan.
// Semua fungsi di sini murni; "sekarang" selalu dioper sebagai parameter.
package service

import "time"

const day = 24 * time.Hour

// WeekIndex memetakan tanggal kejadian ke minggu ke-N sejak startDate.
//
//	days = floor((eventDate - startDate) / 24h)
//	days < 0  → 0 (belum ada iuran yang jatuh tempo)
//	selainnya → ceil(days/7) + 1
//
// Dipakai untuk minggu berjalan, minggu pembayaran, bucket laporan dan replay
// historis; jangan menulis ulang rumus ini di tempat lain.
func WeekIndex(eventDate, startDate time.Time) int {
	d := eventDate.Sub(startDate)
	if d < 0 {
		return 0
	}
	days := int(d / day)
	return (days+6)/7 + 1
}
