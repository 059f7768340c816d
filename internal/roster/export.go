package roster

import (
	"strings"
	"time"

	"tasjeel/pkg/domain"
)

// utf8BOM makes spreadsheet tools decode the Arabic text correctly.
const utf8BOM = "\uFEFF"

// exportHeaders is the versioned column order of the CSV export. Changing it
// breaks downstream spreadsheets, treat it as a wire format.
var exportHeaders = []string{ //nolint: gochecknoglobals
	"الاسم",
	"الرقم القومي",
	"تاريخ الميلاد",
	"النوع",
	"الهاتف",
	"المستوى",
	"الأجزاء الذهبية",
	"المركز",
	"اللجنة",
	"العنوان",
	"تاريخ التسجيل",
}

// ExportCSV serializes the given (already-filtered) records into a CSV byte
// sequence: UTF-8 BOM prefix, fixed column order, every field quoted. The
// output is deterministic, same input always yields byte-identical output.
func ExportCSV(records []domain.Contestant) []byte {
	var sb strings.Builder
	sb.WriteString(utf8BOM)
	sb.WriteString(joinQuoted(exportHeaders))

	for _, record := range records {
		sb.WriteByte('\n')
		sb.WriteString(joinQuoted([]string{
			record.FullName,
			record.NationalID,
			record.BirthDate.Format(time.DateOnly),
			genderLabel(record.Gender),
			record.PhoneNumber,
			record.Level,
			boolLabel(record.GoldenPsalms),
			record.Center,
			record.ExamCommittee,
			record.Address,
			record.CreatedAt.Format(time.DateOnly),
		}))
	}

	return []byte(sb.String())
}

// Filename is the attachment name for an export generated at the given time.
func Filename(now time.Time) string {
	return "contestants_export_" + now.Format(time.DateOnly) + ".csv"
}

func joinQuoted(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}

	return strings.Join(quoted, ",")
}

func genderLabel(gender domain.Gender) string {
	if gender == domain.GenderFemale {
		return "أنثى"
	}

	return "ذكر"
}

func boolLabel(b bool) string {
	if b {
		return "نعم"
	}

	return "لا"
}
