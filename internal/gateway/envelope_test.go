package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProductPage(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantLen   int
		wantTotal int
	}{
		{
			name:      "bare array falls back to item count",
			body:      `[{"id": 1, "name": "a"}, {"id": 2, "name": "b"}]`,
			wantLen:   2,
			wantTotal: 2,
		},
		{
			name:      "products envelope with totalCount",
			body:      `{"products": [{"id": 1, "name": "a"}], "totalCount": 25}`,
			wantLen:   1,
			wantTotal: 25,
		},
		{
			name:      "data envelope with total_count",
			body:      `{"data": [{"id": 1, "name": "a"}], "total_count": 12}`,
			wantLen:   1,
			wantTotal: 12,
		},
		{
			name:      "envelope without a count falls back to item count",
			body:      `{"products": [{"id": 1, "name": "a"}, {"id": 2, "name": "b"}]}`,
			wantLen:   2,
			wantTotal: 2,
		},
		{
			name:      "products takes precedence over data",
			body:      `{"products": [{"id": 1, "name": "a"}], "data": [{"id": 9, "name": "x"}, {"id": 10, "name": "y"}], "totalCount": 1}`,
			wantLen:   1,
			wantTotal: 1,
		},
		{
			name:      "empty envelope",
			body:      `{}`,
			wantLen:   0,
			wantTotal: 0,
		},
		{
			name:      "zero totalCount with items is honored",
			body:      `{"products": [{"id": 1, "name": "a"}], "totalCount": 0}`,
			wantLen:   1,
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := decodeProductPage([]byte(tt.body))
			require.NoError(t, err)
			assert.Len(t, page.Items, tt.wantLen)
			assert.Equal(t, tt.wantTotal, page.TotalCount)
			assert.NotNil(t, page.Items, "items are always non-nil after normalization")
		})
	}
}

func TestDecodeProductPage_Malformed(t *testing.T) {
	_, err := decodeProductPage([]byte(`[{"id": "not-a-number"}]`))
	assert.Error(t, err)

	_, err = decodeProductPage([]byte(`not json`))
	assert.Error(t, err)
}
