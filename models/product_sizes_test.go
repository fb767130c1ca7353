package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decodeSizes(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("bad fixture %s: %v", raw, err)
	}
	return v
}

func TestNormalizeSizes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []ProductSize
	}{
		{
			name: "string labels get default stock",
			raw:  `["S", " M ", ""]`,
			want: []ProductSize{{"S", 999}, {"M", 999}},
		},
		{
			name: "quantity wins over inStock and stock",
			raw:  `[{"label": "S", "quantity": 3, "inStock": false, "stock": 7}]`,
			want: []ProductSize{{"S", 3}},
		},
		{
			name: "inStock wins over stock",
			raw:  `[{"label": "M", "inStock": false, "stock": 7}, {"label": "L", "inStock": true}]`,
			want: []ProductSize{{"M", 0}, {"L", 999}},
		},
		{
			name: "stock is used when nothing else is set",
			raw:  `[{"label": "XL", "stock": 4}]`,
			want: []ProductSize{{"XL", 4}},
		},
		{
			name: "label only defaults to 999",
			raw:  `[{"label": "XS"}]`,
			want: []ProductSize{{"XS", 999}},
		},
		{
			name: "entries without label are dropped",
			raw:  `[{"quantity": 2}, {"label": "  "}, 5, {"label": "S", "quantity": 1}]`,
			want: []ProductSize{{"S", 1}},
		},
		{
			name: "duplicates are removed case-insensitively, first wins",
			raw:  `[{"label": "m", "quantity": 1}, {"label": "M", "quantity": 9}, "L"]`,
			want: []ProductSize{{"m", 1}},
		},
		{
			name: "non-list input",
			raw:  `{"label": "S"}`,
			want: []ProductSize{},
		},
		{
			name: "null",
			raw:  `null`,
			want: []ProductSize{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSizes(decodeSizes(t, tt.raw)))
		})
	}
}

func TestNormalizeSizesIsIdempotent(t *testing.T) {
	first := NormalizeSizes(decodeSizes(t, `["S", {"label": "M", "inStock": false}]`))
	second := NormalizeSizes(SizesToRaw(first))
	assert.Equal(t, first, second)
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, NormalizeRole("admin"))
	assert.Equal(t, RoleUser, NormalizeRole("user"))
	assert.Equal(t, RoleUser, NormalizeRole("superuser"))
	assert.Equal(t, RoleUser, NormalizeRole(""))
}

func TestPublicUserReportsAdminFlag(t *testing.T) {
	u := &User{ID: "1", Name: "A", Email: "a@x.com", Role: RoleAdmin}
	assert.True(t, u.Public().IsAdmin)

	u.Role = RoleUser
	assert.False(t, u.Public().IsAdmin)
}
