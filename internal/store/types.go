// Package store holds the immutable in-memory register of Hong Kong
// veterinarians. The register is loaded once at process start and is
// read-only afterwards.
package store

import "strings"

// VetRecord is a single entry of the veterinary register. Field names follow
// a stable internal schema; the natural-language column headings of the
// published register are mapped to this schema at the loading boundary.
type VetRecord struct {
	Name             string `json:"name"`
	RegistrationNo   string `json:"registration_no"`
	RegistrationDate string `json:"registration_date"` // day/month/year, 2-digit year
	Address          string `json:"address"`
	Qualifications   string `json:"qualifications"`
	Year             string `json:"year"`
	CPDDate          string `json:"cpd_date"`
	ClinicType       string `json:"clinic_type"`
	TreatsAnimals    string `json:"treats_animals"` // free-text list, e.g. "狗, 貓 dog, cat"
	Services         string `json:"services"`       // free-text list, e.g. "內科, 外科"
	District         string `json:"district"`       // one of the 18 HK districts
	ClinicSize       string `json:"clinic_size"`
	Emergency        bool   `json:"emergency"`
	FixedAddress     bool   `json:"fixed_address"`
	Phone            string `json:"phone"`
	// Precomputed upstream; carried through verbatim, never recomputed here.
	ProfessionalScore string `json:"professional_score"`
	ServiceDiversity  string `json:"service_diversity"`
}

// registerRecord mirrors the raw column headings of the published register
// JSON. It exists only so the loader can decode the upstream format; the rest
// of the codebase never sees these keys.
type registerRecord struct {
	Name              string `json:"姓 名"`
	RegistrationNo    string `json:"註 冊 編 號"`
	RegistrationDate  string `json:"註 冊 日 期(日/月/年)"`
	Address           string `json:"在 香 港 的 固 定 執 業 地 址 (如 適 用)"`
	Qualifications    string `json:"學 歷"`
	Year              string `json:"年 份"`
	CPDDate           string `json:"最 近 達 到 持 續 專 業 發 展 計 劃 要 求 的 日 期(日/月/年)"`
	ClinicType        string `json:"診所類型"`
	TreatsAnimals     string `json:"治療動物"`
	Services          string `json:"提供服務"`
	District          string `json:"地區"`
	ClinicSize        string `json:"診所規模"`
	// The register stores its boolean columns as the strings "True"/"False".
	Emergency         string `json:"緊急服務"`
	FixedAddress      string `json:"有固定地址"`
	Phone             string `json:"電話號碼"`
	ProfessionalScore string `json:"專業分數"`
	ServiceDiversity  string `json:"服務多樣性"`
}

func (r registerRecord) toVetRecord() VetRecord {
	return VetRecord{
		Name:              r.Name,
		RegistrationNo:    r.RegistrationNo,
		RegistrationDate:  r.RegistrationDate,
		Address:           r.Address,
		Qualifications:    r.Qualifications,
		Year:              r.Year,
		CPDDate:           r.CPDDate,
		ClinicType:        r.ClinicType,
		TreatsAnimals:     r.TreatsAnimals,
		Services:          r.Services,
		District:          r.District,
		ClinicSize:        r.ClinicSize,
		Emergency:         parseRegisterBool(r.Emergency),
		FixedAddress:      parseRegisterBool(r.FixedAddress),
		Phone:             r.Phone,
		ProfessionalScore: r.ProfessionalScore,
		ServiceDiversity:  r.ServiceDiversity,
	}
}

// parseRegisterBool interprets the register's boolean-as-string columns.
// Anything that is not a case-insensitive "true" is treated as false.
func parseRegisterBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
