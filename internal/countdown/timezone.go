package countdown

import (
	"fmt"
	"time"

	// Zone lookups must not depend on the host having a zoneinfo database.
	_ "time/tzdata"
)

// Zone is an IANA zone with the abbreviation shown next to it.
type Zone struct {
	Name         string
	Abbreviation string
}

// PopularZones is ordered from west to east. ZoneForOffset returns the first
// match, so ambiguous offsets resolve to the earlier entry.
var PopularZones = []Zone{
	{"Pacific/Kwajalein", "MHT"},
	{"Pacific/Pago_Pago", "SST"},
	{"Pacific/Honolulu", "HST"},
	{"America/Anchorage", "AKDT/AKST"},
	{"America/Los_Angeles", "PDT/PST"},
	{"America/Denver", "MDT/MST"},
	{"America/Mexico_City", "CDT/CST"},
	{"America/New_York", "EDT/EST"},
	{"America/Santiago", "CLST/CLT"},
	{"America/Sao_Paulo", "BRT"},
	{"Atlantic/South_Georgia", "GST"},
	{"Atlantic/Azores", "AZOT/AZOST"},
	{"Europe/London", "BST/GMT"},
	{"Europe/Paris", "CEST/CET"},
	{"Africa/Cairo", "EET/EEST"},
	{"Europe/Moscow", "MSK"},
	{"Asia/Tehran", "IRST/IRDT"},
	{"Asia/Dubai", "GST"},
	{"Asia/Kabul", "AFT"},
	{"Asia/Karachi", "PKT"},
	{"Asia/Kolkata", "IST"},
	{"Asia/Kathmandu", "NPT"},
	{"Asia/Dhaka", "BST"},
	{"Asia/Yangon", "MMT"},
	{"Asia/Bangkok", "ICT"},
	{"Asia/Shanghai", "CST"},
	{"Asia/Tokyo", "JST"},
	{"Australia/Adelaide", "ACST/ACDT"},
	{"Australia/Sydney", "AEST/AEDT"},
	{"Australia/Lord_Howe", "LHST/LHDT"},
	{"Pacific/Guadalcanal", "SBT"},
	{"Pacific/Auckland", "NZST/NZDT"},
	{"Pacific/Chatham", "CHAST/CHADT"},
	{"Pacific/Tongatapu", "TOT"},
	{"Pacific/Kiritimati", "LINT"},
}

// OffsetLabel formats minutes as UTC±HH:MM.
func OffsetLabel(offsetMinutes int) string {
	sign := '+'
	if offsetMinutes < 0 {
		sign = '-'
		offsetMinutes = -offsetMinutes
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, offsetMinutes/60, offsetMinutes%60)
}

// ZoneForOffset returns the first popular zone whose offset at the given
// instant equals offsetMinutes, or "UTC" when none does. The answer changes
// with daylight saving time.
func ZoneForOffset(offsetMinutes int, at time.Time) string {
	for _, z := range PopularZones {
		loc, err := time.LoadLocation(z.Name)
		if err != nil {
			continue
		}
		if _, off := at.In(loc).Zone(); off == offsetMinutes*60 {
			return z.Name
		}
	}
	return "UTC"
}

// Abbreviation returns the display abbreviation for a popular zone, or a
// readable form of the name for any other zone.
func Abbreviation(zone string) string {
	for _, z := range PopularZones {
		if z.Name == zone {
			return z.Abbreviation
		}
	}
	out := make([]rune, 0, len(zone))
	for _, r := range zone {
		switch r {
		case '_':
			out = append(out, ' ')
		case '/':
			out = append(out, ',', ' ')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
