package receipt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wempyhq/wempy-ordering/internal/app/model"
	"github.com/xuri/excelize/v2"
)

// FileNamePattern matches receipt workbooks inside the receipts directory.
const FileNamePattern = "wempy_order_*.xlsx"

// Generator renders accepted orders into printable receipt workbooks.
type Generator struct {
	dir string
}

func NewGenerator(dir string) *Generator {
	return &Generator{dir: dir}
}

// Write renders the order into wempy_order_<id>.xlsx under the receipts
// directory and returns the file path.
func (g *Generator) Write(order *model.Order) (string, error) {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create receipts directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Receipt"
	f.SetSheetName("Sheet1", sheet)
	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "D", 12)

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", fmt.Errorf("failed to create style: %w", err)
	}

	row := 1
	heading := func(text string) {
		cell := fmt.Sprintf("A%d", row)
		f.SetCellValue(sheet, cell, text)
		f.SetCellStyle(sheet, cell, cell, bold)
		row++
	}
	labeled := func(label, value string) {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), value)
		row++
	}

	heading(fmt.Sprintf("Order #%d", order.ID))
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Date: "+order.CreatedAt.Format("2006-01-02 15:04"))
	row += 2

	heading("Customer")
	labeled("Name:", order.CustomerName)
	labeled("Phone:", order.CustomerPhone)
	labeled("Address:", order.CustomerAddress)
	row++

	heading("Items")
	header := fmt.Sprintf("A%d", row)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Item")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Qty")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Price")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), "Total")
	f.SetCellStyle(sheet, header, fmt.Sprintf("D%d", row), bold)
	row++
	for _, item := range order.Items {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("%.2f", item.UnitPrice))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("%.2f", float64(item.Quantity)*item.UnitPrice))
		row++
	}
	row++

	heading("Totals")
	labeled("Subtotal:", fmt.Sprintf("%.2f", order.Subtotal))
	labeled("Delivery fee:", fmt.Sprintf("%.2f", order.DeliveryFee))
	labeled("Grand total:", fmt.Sprintf("%.2f", order.Total))

	if order.CustomerNotes != "" {
		row++
		heading("Notes")
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), order.CustomerNotes)
	}

	path := filepath.Join(g.dir, fmt.Sprintf("wempy_order_%d.xlsx", order.ID))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save receipt: %w", err)
	}
	return path, nil
}
