package receipt

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wempyhq/wempy-ordering/internal/app/model"
	"github.com/xuri/excelize/v2"
)

func testReceiptOrder() *model.Order {
	return &model.Order{
		ID:              42,
		CustomerName:    "Ada",
		CustomerPhone:   "555-0100",
		CustomerAddress: "1 Main St",
		CustomerNotes:   "ring twice",
		Subtotal:        24,
		DeliveryFee:     3.5,
		Total:           27.5,
		CreatedAt:       time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC),
		Items: []model.OrderItem{
			{LineID: "house-burger-Large", Name: "House Burger (Large)", Quantity: 2, UnitPrice: 12},
		},
	}
}

func TestGenerator_Write(t *testing.T) {
	dir := t.TempDir()
	generator := NewGenerator(dir)

	path, err := generator.Write(testReceiptOrder())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wempy_order_42.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Receipt")
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	assert.Equal(t, "Order #42", rows[0][0])

	flat := make(map[string]bool)
	for _, row := range rows {
		for _, cell := range row {
			flat[cell] = true
		}
	}
	assert.True(t, flat["Ada"])
	assert.True(t, flat["House Burger (Large)"])
	assert.True(t, flat["27.50"])
	assert.True(t, flat["ring twice"])
}

func TestGenerator_WriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "orders")
	generator := NewGenerator(dir)

	path, err := generator.Write(testReceiptOrder())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestGenerator_FileNameMatchesPattern(t *testing.T) {
	dir := t.TempDir()
	generator := NewGenerator(dir)

	path, err := generator.Write(testReceiptOrder())
	require.NoError(t, err)

	matched, err := filepath.Match(FileNamePattern, filepath.Base(path))
	require.NoError(t, err)
	assert.True(t, matched)
}
