package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"

	"catalogctl/internal/core/catalog"
)

// ProductPage is the normalized result of a list request. The external
// API's list endpoint is polymorphic (a bare array, {products, totalCount}
// or {data, total_count}); normalization happens here, at the gateway
// boundary, so the stores only ever see this shape.
type ProductPage struct {
	Items      []catalog.Product
	TotalCount int
}

// listEnvelope covers both wrapped response shapes.
type listEnvelope struct {
	Products        []catalog.Product `json:"products"`
	Data            []catalog.Product `json:"data"`
	TotalCount      *int              `json:"totalCount"`
	TotalCountSnake *int              `json:"total_count"`
}

// decodeProductPage normalizes the list endpoint's response body.
func decodeProductPage(body []byte) (ProductPage, error) {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []catalog.Product
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return ProductPage{}, fmt.Errorf("decode product list: %w", err)
		}
		// A bare array carries no count; the page itself is all we know.
		return ProductPage{Items: items, TotalCount: len(items)}, nil
	}

	var env listEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return ProductPage{}, fmt.Errorf("decode product list envelope: %w", err)
	}

	page := ProductPage{Items: env.Products}
	if page.Items == nil {
		page.Items = env.Data
	}
	if page.Items == nil {
		page.Items = []catalog.Product{}
	}

	switch {
	case env.TotalCount != nil:
		page.TotalCount = *env.TotalCount
	case env.TotalCountSnake != nil:
		page.TotalCount = *env.TotalCountSnake
	default:
		page.TotalCount = len(page.Items)
	}

	return page, nil
}
