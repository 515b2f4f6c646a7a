package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/melkar/melkar-api/internal/domain/entity"
)

func TestStockStatus(t *testing.T) {
	cases := []struct {
		stock int
		want  string
	}{
		{0, entity.StockStatusSin},
		{1, entity.StockStatusBajo},
		{10, entity.StockStatusBajo}, // frontera: 10 sigue siendo bajo
		{11, entity.StockStatusEnStock},
		{120, entity.StockStatusEnStock},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, entity.StockStatus(tc.stock),
			"stock %d debe ser %s", tc.stock, tc.want)
	}
}
