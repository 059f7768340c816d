// Package nationalid validates the 14-digit Egyptian national identifier and
// derives the attributes it encodes: birth date, governorate of issue and
// gender.
//
// Layout of the identifier:
//
//	digit  1     century code (2 = 1900s, 3 = 2000s)
//	digits 2-3   two-digit year within the century
//	digits 4-5   birth month
//	digits 6-7   birth day
//	digits 8-9   governorate code
//	digits 10-12 sequence number
//	digit  13    gender parity digit (odd = male, even = female)
//	digit  14    checksum digit, accepted as-is (the production system never
//	             verified it; rejecting here would turn away valid IDs)
package nationalid

import (
	"strconv"
	"time"

	"tasjeel/pkg/domain"
	"tasjeel/pkg/serrors"
)

// Validation failure kinds, one per check stage. Checks run in the declared
// order and stop at the first failure, so an input failing several stages
// always reports the earliest one.
var (
	// ErrFormat indicates the input is not exactly 14 decimal digits.
	ErrFormat = serrors.NewKind("ID_FORMAT")
	// ErrCentury indicates a century code other than 2 or 3.
	ErrCentury = serrors.NewKind("ID_CENTURY")
	// ErrMonth indicates a month outside 1..12.
	ErrMonth = serrors.NewKind("ID_MONTH")
	// ErrDay indicates a day outside 1..31.
	ErrDay = serrors.NewKind("ID_DAY")
	// ErrCalendar indicates the encoded day does not exist in the encoded
	// month/year (e.g. Feb 30).
	ErrCalendar = serrors.NewKind("ID_CALENDAR")
	// ErrFutureDate indicates a birth date after the reference date.
	ErrFutureDate = serrors.NewKind("ID_FUTURE_DATE")
	// ErrGovernorate indicates an unknown governorate code.
	ErrGovernorate = serrors.NewKind("ID_GOVERNORATE")
)

// Governorates maps the two-digit governorate code embedded in a national ID
// to the governorate name.
var Governorates = map[string]string{ //nolint: gochecknoglobals
	"01": "القاهرة", "02": "الإسكندرية", "03": "بورسعيد", "04": "السويس",
	"11": "دمياط", "12": "الدقهلية", "13": "الشرقية", "14": "القليوبية",
	"15": "كفر الشيخ", "16": "الغربية", "17": "المنوفية", "18": "البحيرة",
	"19": "الإسماعيلية", "21": "الجيزة", "22": "بني سويف", "23": "الفيوم",
	"24": "المنيا", "25": "أسيوط", "26": "سوهاج", "27": "قنا",
	"28": "أسوان", "29": "الأقصر", "31": "البحر الأحمر", "32": "الوادي الجديد",
	"33": "مطروح", "34": "شمال سيناء", "35": "جنوب سيناء", "88": "خارج مصر",
}

// Details are the attributes derived from a valid national ID.
type Details struct {
	// BirthDate is the encoded birth date at midnight UTC.
	BirthDate time.Time
	// Governorate is the name of the governorate encoded in digits 8-9.
	Governorate string
	// Gender is derived from the parity of digit 13.
	Gender domain.Gender
}

const idLength = 14

// Validate checks the structural correctness of a raw national ID and
// returns the derived details. The reference time now is an explicit
// parameter so results are reproducible; callers outside tests pass
// time.Now().
//
// Validate is pure: same raw and same now always produce the same result.
func Validate(raw string, now time.Time) (*Details, error) {
	if len(raw) != idLength || !allDigits(raw) {
		return nil, serrors.With(ErrFormat, "national id must be exactly 14 digits")
	}

	century := raw[0]
	if century != '2' && century != '3' {
		return nil, serrors.With(ErrCentury, "invalid century code %c", century)
	}

	year := digits(raw[1:3])
	if century == '2' {
		year += 1900
	} else {
		year += 2000
	}

	month := digits(raw[3:5])
	if month < 1 || month > 12 {
		return nil, serrors.With(ErrMonth, "invalid birth month %02d", month)
	}

	day := digits(raw[5:7])
	if day < 1 || day > 31 {
		return nil, serrors.With(ErrDay, "invalid birth day %02d", day)
	}

	// time.Date normalizes out-of-range days (Feb 30 becomes Mar 1/2), so a
	// round-trip mismatch means the encoded date does not exist.
	birthDate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if birthDate.Year() != year || birthDate.Month() != time.Month(month) || birthDate.Day() != day {
		return nil, serrors.With(ErrCalendar, "birth date %04d-%02d-%02d does not exist", year, month, day)
	}

	if birthDate.After(now) {
		return nil, serrors.With(ErrFutureDate, "birth date %s is in the future", birthDate.Format(time.DateOnly))
	}

	governorate, ok := Governorates[raw[7:9]]
	if !ok {
		return nil, serrors.With(ErrGovernorate, "unknown governorate code %s", raw[7:9])
	}

	gender := domain.GenderFemale
	if (raw[12]-'0')%2 == 1 {
		gender = domain.GenderMale
	}

	return &Details{
		BirthDate:   birthDate,
		Governorate: governorate,
		Gender:      gender,
	}, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// digits parses a run of ASCII digits already checked by allDigits.
func digits(s string) int {
	n, _ := strconv.Atoi(s)

	return n
}
