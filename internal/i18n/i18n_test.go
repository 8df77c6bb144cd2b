package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	assert.Equal(t, "Recommended Veterinarians", T("recommended_vets", LangEN))
	assert.Equal(t, "推薦獸醫", T("recommended_vets", LangTC))

	// Unknown language falls back to English.
	assert.Equal(t, "Recommended Veterinarians", T("recommended_vets", "fr"))

	// Missing keys stay visible.
	assert.Equal(t, "nonexistent_key", T("nonexistent_key", LangEN))
}

func TestTf(t *testing.T) {
	assert.Equal(t, "Showing 7 results", Tf("results_count", LangEN, "count", "7"))
	assert.Equal(t, "顯示 7 個結果", Tf("results_count", LangTC, "count", "7"))

	// Unmatched placeholders are left alone.
	assert.Equal(t, "Showing {count} results", Tf("results_count", LangEN))

	// A trailing odd pair member is ignored.
	assert.Equal(t, "Showing {count} results", Tf("results_count", LangEN, "count"))
}
