package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Decode(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		body    string
		wantErr error
		want    Fields
	}{
		{
			name: "complete",
			body: `{"name":"Desk","description":"Oak desk","price":250,"category":"furniture","inStock":true}`,
			want: Fields{Name: "Desk", Description: "Oak desk", Price: 250, Category: "furniture", InStock: true},
		},
		{
			name: "false stock and zero price are present",
			body: `{"name":"Desk","description":"Oak desk","price":0,"category":"furniture","inStock":false}`,
			want: Fields{Name: "Desk", Description: "Oak desk", Price: 0, Category: "furniture", InStock: false},
		},
		{name: "missing name", body: `{"description":"d","price":1,"category":"c","inStock":true}`, wantErr: ErrMissingFields},
		{name: "empty description", body: `{"name":"n","description":"","price":1,"category":"c","inStock":true}`, wantErr: ErrMissingFields},
		{name: "null price", body: `{"name":"n","description":"d","price":null,"category":"c","inStock":true}`, wantErr: ErrMissingFields},
		{name: "missing category", body: `{"name":"n","description":"d","price":1,"inStock":true}`, wantErr: ErrMissingFields},
		{name: "missing stock", body: `{"name":"n","description":"d","price":1,"category":"c"}`, wantErr: ErrMissingFields},
		{name: "empty body", body: ``, wantErr: ErrMissingFields},
		{name: "null body", body: `null`, wantErr: ErrMissingFields},
		{name: "malformed", body: `{"name":`, wantErr: ErrInvalidBody},
		{name: "numeric name", body: `{"name":123,"description":"d","price":1,"category":"c","inStock":true}`, wantErr: ErrInvalidBody},
		{name: "wrong type", body: `{"name":"n","description":"d","price":"cheap","category":"c","inStock":true}`, wantErr: ErrInvalidBody},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := v.Decode(strings.NewReader(tc.body))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
