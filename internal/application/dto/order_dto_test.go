package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melkar/melkar-api/internal/application/dto"
	"github.com/melkar/melkar-api/internal/domain/entity"
)

func TestToLineItems_ProductNameYAliasName(t *testing.T) {
	items := dto.ToLineItems([]dto.LineItemRequest{
		{ProductName: "Cemento", Price: decimal.RequireFromString("10.00"), Quantity: 2},
		{Name: "Varilla", Price: decimal.RequireFromString("8.00"), Quantity: 3},
		{ProductName: "Tornillo", Name: "ignorado", Price: decimal.RequireFromString("1.00"), Quantity: 1},
	})

	require.Len(t, items, 3)
	assert.Equal(t, "Cemento", items[0].ProductName)
	assert.Equal(t, "Varilla", items[1].ProductName, "name es alias cuando falta productName")
	assert.Equal(t, "Tornillo", items[2].ProductName, "productName tiene prioridad sobre name")
}

func TestMovementResponse_ClavesJSON(t *testing.T) {
	body, err := json.Marshal(dto.NewMovementResponse(&entity.InventoryMovement{
		ID:          1,
		ProductName: "Cemento",
		Type:        entity.MovementTypeEntrada,
		Quantity:    5,
		Reason:      "Ajuste",
		Date:        time.Now(),
	}))
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Contains(t, payload, "productName")
	assert.NotContains(t, payload, "transactionId", "sin transacción la clave se omite")
}
