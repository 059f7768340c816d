package domain

// Levels enumerates the memorization levels a contestant can register for,
// in the order they are presented on the registration form.
var Levels = []string{ //nolint: gochecknoglobals
	"المستوى الأول (القرآن كاملاً)",
	"المستوى الثاني (ثلاثة أرباع القرآن)",
	"المستوى الثالث (نصف القرآن)",
	"المستوى الرابع (ربع القرآن)",
	"المستوى الخامس (ثلاثة أجزاء)",
	"المستوى السادس (جزء عم)",
}

// Centers enumerates the contest centers of the Minya governorate.
var Centers = []string{ //nolint: gochecknoglobals
	"بني مزار",
	"مغاغة",
	"العدوة",
	"مطاي",
	"سمالوط",
	"المنيا",
	"المنيا الجديدة",
	"ملوي",
	"أبو قرقاص",
	"دير مواس",
}

// ValidLevel reports whether level is one of the known memorization levels.
func ValidLevel(level string) bool {
	for _, l := range Levels {
		if l == level {
			return true
		}
	}

	return false
}

// ValidCenter reports whether center is one of the known contest centers.
func ValidCenter(center string) bool {
	for _, c := range Centers {
		if c == center {
			return true
		}
	}

	return false
}
