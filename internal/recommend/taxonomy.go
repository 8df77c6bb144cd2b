// Package recommend implements the heuristic scoring and ranking of vet
// records against free-text queries.
package recommend

import "strings"

// Category is a semantic group of medical trigger terms.
type Category string

const (
	CategoryEmergency Category = "emergency"
	CategorySurgery   Category = "surgery"
	CategoryExotic    Category = "exotic"
	CategorySkin      Category = "skin"
)

// triggers maps each category to its bilingual trigger terms. Matching is by
// case-insensitive substring containment against the whole query.
//
// The skin category is defined in the taxonomy but not gated against any
// record attribute; it contributes nothing to scoring. Kept pending a product
// decision on whether a dermatology rule should exist.
var triggers = map[Category][]string{
	CategoryEmergency: {"vomiting", "bleeding", "accident", "emergency", "unconscious", "急診", "流血", "意外", "嘔吐", "24小時"},
	CategorySurgery:   {"bone", "fracture", "limping", "surgery", "surgical", "tumor", "骨折", "手術", "外科", "腫瘤"},
	CategoryExotic:    {"bird", "rabbit", "hamster", "reptile", "exotic", "鳥", "兔", "倉鼠", "爬蟲", "特殊"},
	CategorySkin:      {"itchy", "skin", "allergy", "rash", "皮膚", "過敏", "發癢"},
}

// hasTrigger reports whether the lower-cased query contains any trigger term
// of the category.
func hasTrigger(lowerQuery string, c Category) bool {
	for _, term := range triggers[c] {
		if strings.Contains(lowerQuery, term) {
			return true
		}
	}
	return false
}
