package constants

import "fmt"

// Template pesan error role
const (
	ErrOnlyTreasurerCanAccess = "❌ Hanya bendahara atau admin yang boleh mengakses fitur %s."
)

func RoleErrorTreasurer(feature string) string {
	return fmt.Sprintf(ErrOnlyTreasurerCanAccess, feature)
}

// ==========================
// ✅ Role yang dikenal token
// ==========================
const (
	RoleTreasurer = "treasurer"
	RoleAdmin     = "admin"
)

var (
	// TreasurerAndAbove boleh menulis data kas.
	TreasurerAndAbove = []string{
		RoleTreasurer,
		RoleAdmin,
	}
)
