package ledger

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mitchstreats/treats-backend/internal/app/model"
	"github.com/mitchstreats/treats-backend/internal/catalog"
	"github.com/mitchstreats/treats-backend/pkg/logger"
)

// Ledger appends a durable record per accepted order. Like notification,
// a ledger failure must never block order acceptance.
type Ledger interface {
	AppendOrder(order model.OrderSubmission, orderID string) error
}

// WorkbookLedger writes orders to an .xlsx workbook, one row per order. The
// column schema is fixed per catalog: one quantity column per product plus a
// flavor column for flavor products, so a row reads like the paper order
// sheet the baker works from.
type WorkbookLedger struct {
	path    string
	sheet   string
	catalog *catalog.Catalog
}

// NewWorkbookLedger creates a ledger writing to the given workbook path.
func NewWorkbookLedger(path, sheet string, cat *catalog.Catalog) (*WorkbookLedger, error) {
	if path == "" {
		return nil, errors.New("ledger path is required")
	}
	if sheet == "" {
		sheet = "Sheet1"
	}
	return &WorkbookLedger{path: path, sheet: sheet, catalog: cat}, nil
}

// AppendOrder opens (or creates) the workbook, makes sure the header row
// exists and appends the order as a new row.
func (l *WorkbookLedger) AppendOrder(order model.OrderSubmission, orderID string) error {
	f, err := l.openWorkbook()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := l.ensureHeader(f); err != nil {
		return err
	}

	rows, err := f.GetRows(l.sheet)
	if err != nil {
		return fmt.Errorf("failed to read ledger sheet: %w", err)
	}

	row := l.buildRow(order, orderID)
	cell := fmt.Sprintf("A%d", len(rows)+1)
	if err := f.SetSheetRow(l.sheet, cell, &row); err != nil {
		return fmt.Errorf("failed to append ledger row: %w", err)
	}

	if err := f.SaveAs(l.path); err != nil {
		return fmt.Errorf("failed to save ledger workbook: %w", err)
	}

	logger.Info("Order appended to ledger", map[string]interface{}{
		"order_id": orderID,
		"path":     l.path,
	})
	return nil
}

func (l *WorkbookLedger) openWorkbook() (*excelize.File, error) {
	if _, err := os.Stat(l.path); err != nil {
		if os.IsNotExist(err) {
			f := excelize.NewFile()
			if l.sheet != "Sheet1" {
				if err := f.SetSheetName("Sheet1", l.sheet); err != nil {
					f.Close()
					return nil, fmt.Errorf("failed to name ledger sheet: %w", err)
				}
			}
			return f, nil
		}
		return nil, fmt.Errorf("failed to stat ledger workbook: %w", err)
	}

	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger workbook: %w", err)
	}
	idx, err := f.GetSheetIndex(l.sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("invalid ledger sheet name: %w", err)
	}
	if idx == -1 {
		if _, err := f.NewSheet(l.sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create ledger sheet: %w", err)
		}
	}
	return f, nil
}

func (l *WorkbookLedger) headers() []string {
	headers := []string{"Order ID", "Timestamp", "Customer Name", "Email", "Phone", "Pickup Date"}
	for _, p := range l.catalog.Products() {
		headers = append(headers, p.Name+" - Qty")
		if p.HasFlavorOptions {
			headers = append(headers, p.Name+" - Flavor")
		}
	}
	return append(headers, "Special Instructions", "Total Items")
}

func (l *WorkbookLedger) ensureHeader(f *excelize.File) error {
	a1, err := f.GetCellValue(l.sheet, "A1")
	if err != nil {
		return fmt.Errorf("failed to read ledger header: %w", err)
	}
	if a1 != "" {
		return nil
	}

	headers := l.headers()
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := f.SetSheetRow(l.sheet, "A1", &row); err != nil {
		return fmt.Errorf("failed to write ledger header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"0047AB"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return fmt.Errorf("failed to resolve last column: %w", err)
	}
	if err := f.SetCellStyle(l.sheet, "A1", lastCol+"1", style); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}
	if err := f.SetRowHeight(l.sheet, 1, 40); err != nil {
		return fmt.Errorf("failed to set header height: %w", err)
	}
	if err := f.SetColWidth(l.sheet, "A", lastCol, 18); err != nil {
		return fmt.Errorf("failed to set column widths: %w", err)
	}
	// Keep the header visible while scrolling orders.
	if err := f.SetPanes(l.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header row: %w", err)
	}
	return nil
}

func (l *WorkbookLedger) buildRow(order model.OrderSubmission, orderID string) []interface{} {
	type cell struct {
		qty     int
		flavors []string
	}
	byProduct := make(map[string]*cell)
	for _, item := range order.Items {
		c, ok := byProduct[item.ProductID]
		if !ok {
			c = &cell{}
			byProduct[item.ProductID] = c
		}
		c.qty += item.Quantity
		if item.Flavor != "" {
			c.flavors = append(c.flavors, item.Flavor)
		}
	}

	row := []interface{}{
		orderID,
		time.Now().Format(time.RFC3339),
		order.Customer.Name,
		order.Customer.Email,
		order.Customer.Phone,
		order.Customer.PickupDate,
	}
	for _, p := range l.catalog.Products() {
		c := byProduct[p.ID]
		if c == nil {
			row = append(row, 0)
			if p.HasFlavorOptions {
				row = append(row, "")
			}
			continue
		}
		row = append(row, c.qty)
		if p.HasFlavorOptions {
			row = append(row, strings.Join(c.flavors, ", "))
		}
	}
	return append(row, order.SpecialInstructions, order.TotalItems)
}
