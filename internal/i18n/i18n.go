// Package i18n is a pure key/value string table for the two display
// languages. Presentation only; no record data passes through it.
package i18n

import "strings"

// Language codes accepted throughout the service.
const (
	LangEN = "en"
	LangTC = "tc"
)

type entry struct {
	en string
	tc string
}

var translations = map[string]entry{
	"recommended_vets": {
		en: "Recommended Veterinarians",
		tc: "推薦獸醫",
	},
	"results_count": {
		en: "Showing {count} results",
		tc: "顯示 {count} 個結果",
	},
	"no_vets_found": {
		en: "No veterinarians found",
		tc: "找不到獸醫",
	},
	"emergency_only": {
		en: "24H Emergency Only",
		tc: "僅限24小時急診",
	},
	"all_districts": {
		en: "All Districts",
		tc: "所有地區",
	},
	"district": {
		en: "District",
		tc: "地區",
	},
	"services": {
		en: "Services",
		tc: "提供服務",
	},
	"phone": {
		en: "Phone",
		tc: "電話號碼",
	},
	"emergency_service": {
		en: "24H Emergency",
		tc: "24小時急診",
	},
	"assistant_reply": {
		en: "Assistant",
		tc: "AI 助手",
	},
}

// T looks up key in the given language, falling back to English, then to the
// key itself so missing entries stay visible.
func T(key, lang string) string {
	e, ok := translations[key]
	if !ok {
		return key
	}
	if lang == LangTC {
		return e.tc
	}
	return e.en
}

// Tf looks up key and substitutes {placeholder} occurrences from pairs of
// placeholder name and value.
func Tf(key, lang string, pairs ...string) string {
	s := T(key, lang)
	for i := 0; i+1 < len(pairs); i += 2 {
		s = strings.ReplaceAll(s, "{"+pairs[i]+"}", pairs[i+1])
	}
	return s
}
