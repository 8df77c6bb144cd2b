package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsMissingRegistrationNumber(t *testing.T) {
	_, err := New([]VetRecord{{Name: "Dr. CHAN Tai Man"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing registration number")
}

func TestNew_RejectsDuplicateRegistrationNumbers(t *testing.T) {
	_, err := New([]VetRecord{
		{Name: "Dr. CHAN Tai Man", RegistrationNo: "VSB0001"},
		{Name: "Dr. WONG Siu Ling", RegistrationNo: "VSB0001"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate registration number "VSB0001"`)
}

func TestStore_Get(t *testing.T) {
	st, err := New([]VetRecord{
		{Name: "Dr. CHAN Tai Man", RegistrationNo: "VSB0001"},
		{Name: "Dr. WONG Siu Ling", RegistrationNo: "VSB0002"},
	})
	require.NoError(t, err)

	rec, ok := st.Get("VSB0002")
	require.True(t, ok)
	assert.Equal(t, "Dr. WONG Siu Ling", rec.Name)

	_, ok = st.Get("VSB9999")
	assert.False(t, ok)
}

func filterStore(t *testing.T) *Store {
	t.Helper()

	st, err := New([]VetRecord{
		{
			Name:           "Dr. CHAN Tai Man 陳大文",
			RegistrationNo: "VSB0001",
			Address:        "88 Des Voeux Road Central 中環德輔道中88號",
			District:       "Central and Western 中西區",
			Services:       "內科, 外科 Internal Medicine, Surgery",
			TreatsAnimals:  "Dogs, Cats 狗, 貓",
			Emergency:      true,
		},
		{
			Name:           "Dr. WONG Siu Ling 黃小玲",
			RegistrationNo: "VSB0002",
			Address:        "2 Lockhart Road, Wan Chai 灣仔駱克道2號",
			District:       "Wan Chai 灣仔區",
			Services:       "內科 Internal Medicine",
			TreatsAnimals:  "Cats 貓",
		},
		{
			Name:           "Dr. LEUNG Ka Fai 梁家輝",
			RegistrationNo: "VSB0003",
			Address:        "15 Castle Peak Road, Tsuen Wan 荃灣青山公路15號",
			District:       "Tsuen Wan 荃灣區",
			Services:       "內科, 特殊動物診療 Exotic Animal Care",
			TreatsAnimals:  "特殊動物 Exotic Animals, Rabbits 兔",
			Emergency:      true,
		},
	})
	require.NoError(t, err)
	return st
}

func TestStore_Filter(t *testing.T) {
	st := filterStore(t)

	tests := []struct {
		name string
		opts FilterOptions
		want []string
	}{
		{
			name: "no options returns everything in order",
			opts: FilterOptions{},
			want: []string{"VSB0001", "VSB0002", "VSB0003"},
		},
		{
			name: "district english",
			opts: FilterOptions{District: "wan chai"},
			want: []string{"VSB0002"},
		},
		{
			name: "district chinese",
			opts: FilterOptions{District: "荃灣"},
			want: []string{"VSB0003"},
		},
		{
			name: "emergency only",
			opts: FilterOptions{EmergencyOnly: true},
			want: []string{"VSB0001", "VSB0003"},
		},
		{
			name: "animal",
			opts: FilterOptions{Animal: "rabbit"},
			want: []string{"VSB0003"},
		},
		{
			name: "query matches services",
			opts: FilterOptions{Query: "surgery"},
			want: []string{"VSB0001"},
		},
		{
			name: "query matches name case-insensitively",
			opts: FilterOptions{Query: "leung"},
			want: []string{"VSB0003"},
		},
		{
			name: "combined options intersect",
			opts: FilterOptions{EmergencyOnly: true, District: "central"},
			want: []string{"VSB0001"},
		},
		{
			name: "limit truncates",
			opts: FilterOptions{Limit: 2},
			want: []string{"VSB0001", "VSB0002"},
		},
		{
			name: "no match",
			opts: FilterOptions{District: "kowloon city"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := st.Filter(tt.opts)
			var regNos []string
			for _, rec := range got {
				regNos = append(regNos, rec.RegistrationNo)
			}
			assert.Equal(t, tt.want, regNos)
		})
	}
}

func TestLoadJSON_MapsRegisterColumns(t *testing.T) {
	raw := `[
		{
			"姓 名": "Dr. CHAN Tai Man 陳大文",
			"註 冊 編 號": "VSB0001",
			"註 冊 日 期(日/月/年)": "12/03/98",
			"在 香 港 的 固 定 執 業 地 址 (如 適 用)": "88 Des Voeux Road Central",
			"學 歷": "BVSc (Sydney)",
			"診所類型": "綜合醫院",
			"治療動物": "狗, 貓",
			"提供服務": "內科, 外科",
			"地區": "Central and Western 中西區",
			"緊急服務": "True",
			"有固定地址": "true",
			"電話號碼": "2525 1234"
		},
		{
			"姓 名": "Dr. WONG Siu Ling 黃小玲",
			"註 冊 編 號": "VSB0002",
			"緊急服務": "False",
			"有固定地址": ""
		}
	]`

	st, err := LoadJSON(strings.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, 2, st.Len())

	rec, ok := st.Get("VSB0001")
	require.True(t, ok)
	assert.Equal(t, "Dr. CHAN Tai Man 陳大文", rec.Name)
	assert.Equal(t, "12/03/98", rec.RegistrationDate)
	assert.Equal(t, "88 Des Voeux Road Central", rec.Address)
	assert.Equal(t, "BVSc (Sydney)", rec.Qualifications)
	assert.Equal(t, "綜合醫院", rec.ClinicType)
	assert.Equal(t, "狗, 貓", rec.TreatsAnimals)
	assert.Equal(t, "內科, 外科", rec.Services)
	assert.Equal(t, "Central and Western 中西區", rec.District)
	assert.Equal(t, "2525 1234", rec.Phone)
	assert.True(t, rec.Emergency)
	assert.True(t, rec.FixedAddress)

	rec, ok = st.Get("VSB0002")
	require.True(t, ok)
	assert.False(t, rec.Emergency)
	assert.False(t, rec.FixedAddress)
}

func TestLoadJSON_RejectsMalformedInput(t *testing.T) {
	_, err := LoadJSON(strings.NewReader(`{"not": "an array"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode register")
}

func TestLoadEmbedded(t *testing.T) {
	st, err := LoadEmbedded()
	require.NoError(t, err)
	assert.Equal(t, 19, st.Len())

	rec, ok := st.Get("VSB0412")
	require.True(t, ok)
	assert.True(t, rec.Emergency)
	assert.Contains(t, rec.District, "Central and Western")
}

func TestParseRegisterBool(t *testing.T) {
	assert.True(t, parseRegisterBool("True"))
	assert.True(t, parseRegisterBool("true"))
	assert.True(t, parseRegisterBool(" TRUE "))
	assert.False(t, parseRegisterBool("False"))
	assert.False(t, parseRegisterBool(""))
	assert.False(t, parseRegisterBool("yes"))
}

func TestIsDistrict(t *testing.T) {
	assert.True(t, IsDistrict("Central and Western 中西區"))
	assert.True(t, IsDistrict("Wan Chai 灣仔區"))
	assert.True(t, IsDistrict("central"))
	assert.True(t, IsDistrict("灣仔"))
	assert.False(t, IsDistrict("Happy Valley"))
	assert.False(t, IsDistrict(""))
}

func TestDistricts_Complete(t *testing.T) {
	assert.Len(t, Districts, 18)
}
