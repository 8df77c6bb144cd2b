package store

import "strings"

// Districts lists the 18 Hong Kong administrative districts used for
// geographic filtering, in the register's bilingual form.
var Districts = []string{
	"Central and Western 中西區",
	"Eastern 東區",
	"Southern 南區",
	"Wan Chai 灣仔區",
	"Kowloon City 九龍城區",
	"Kwun Tong 觀塘區",
	"Sham Shui Po 深水埗區",
	"Wong Tai Sin 黃大仙區",
	"Yau Tsim Mong 油尖旺區",
	"Islands 離島區",
	"Kwai Tsing 葵青區",
	"North 北區",
	"Sai Kung 西貢區",
	"Sha Tin 沙田區",
	"Tai Po 大埔區",
	"Tsuen Wan 荃灣區",
	"Tuen Mun 屯門區",
	"Yuen Long 元朗區",
}

// IsDistrict reports whether name matches one of the 18 districts, in either
// language, by case-insensitive containment.
func IsDistrict(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return false
	}
	for _, d := range Districts {
		if strings.Contains(strings.ToLower(d), n) {
			return true
		}
	}
	return false
}
