package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetfinder-hk/vetfinder/internal/observability"
	"github.com/vetfinder-hk/vetfinder/internal/store"
)

func TestVetsHandler_List(t *testing.T) {
	h := NewVetsHandler(observability.Nop(), testStore(t))

	tests := []struct {
		name     string
		url      string
		wantCode int
		wantRegs []string
	}{
		{
			name:     "no filters",
			url:      "/api/v1/vets",
			wantCode: http.StatusOK,
			wantRegs: []string{"VSB0001", "VSB0002"},
		},
		{
			name:     "district filter",
			url:      "/api/v1/vets?district=wan+chai",
			wantCode: http.StatusOK,
			wantRegs: []string{"VSB0002"},
		},
		{
			name:     "emergency filter",
			url:      "/api/v1/vets?emergency=true",
			wantCode: http.StatusOK,
			wantRegs: []string{"VSB0001"},
		},
		{
			name:     "animal filter",
			url:      "/api/v1/vets?animal=dog",
			wantCode: http.StatusOK,
			wantRegs: []string{"VSB0001"},
		},
		{
			name:     "text query",
			url:      "/api/v1/vets?q=lockhart",
			wantCode: http.StatusOK,
			wantRegs: []string{"VSB0002"},
		},
		{
			name:     "limit",
			url:      "/api/v1/vets?limit=1",
			wantCode: http.StatusOK,
			wantRegs: []string{"VSB0001"},
		},
		{
			name:     "no matches gives empty list",
			url:      "/api/v1/vets?district=sha+tin",
			wantCode: http.StatusOK,
			wantRegs: []string{},
		},
		{
			name:     "unknown district",
			url:      "/api/v1/vets?district=atlantis",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad emergency value",
			url:      "/api/v1/vets?emergency=maybe",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad limit value",
			url:      "/api/v1/vets?limit=-1",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			h.List(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode != http.StatusOK {
				return
			}

			var resp struct {
				Total int               `json:"total"`
				Vets  []store.VetRecord `json:"vets"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotNil(t, resp.Vets)
			assert.Equal(t, len(tt.wantRegs), resp.Total)

			regs := make([]string, 0, len(resp.Vets))
			for _, v := range resp.Vets {
				regs = append(regs, v.RegistrationNo)
			}
			assert.Equal(t, tt.wantRegs, regs)
		})
	}
}

func TestVetsHandler_Get(t *testing.T) {
	h := NewVetsHandler(observability.Nop(), testStore(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vets/VSB0001", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("registrationNo", "VSB0001")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	h.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got store.VetRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Dr. CHAN Tai Man 陳大文", got.Name)
	assert.True(t, got.Emergency)
}

func TestVetsHandler_GetNotFound(t *testing.T) {
	h := NewVetsHandler(observability.Nop(), testStore(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vets/VSB9999", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("registrationNo", "VSB9999")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVetsHandler_Districts(t *testing.T) {
	h := NewVetsHandler(observability.Nop(), testStore(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/districts", nil)
	rec := httptest.NewRecorder()
	h.Districts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp["districts"], 18)
	assert.Contains(t, resp["districts"], "Wan Chai 灣仔區")
}
