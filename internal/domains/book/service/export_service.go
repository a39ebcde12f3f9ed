package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"topbookstore-backend/internal/domains/book/model"
)

// ExportBooks renders the filtered catalog as an xlsx workbook. The same
// filter resolution as FilterBooks applies.
func (s *bookService) ExportBooks(ctx context.Context, params map[string]string) ([]byte, error) {
	books, err := s.FilterBooks(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list books for export: %w", err)
	}

	f, err := buildBooksExcelFile(books)
	if err != nil {
		return nil, fmt.Errorf("failed to build excel file: %w", err)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel file: %w", err)
	}

	return buf.Bytes(), nil
}

func buildBooksExcelFile(books []*model.Book) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Books"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{
		"ID",
		"Title",
		"ISBN13",
		"Author",
		"Publisher",
		"Price",
		"Discount %",
		"Discounted Price",
		"Pages",
		"Inventory",
		"Publication Date",
	}

	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "K1", headerStyle)
	}

	for i, b := range books {
		rowNum := i + 2
		cell := func(col int) string {
			name, _ := excelize.CoordinatesToCellName(col, rowNum)
			return name
		}

		f.SetCellValue(sheetName, cell(1), b.ID)
		f.SetCellValue(sheetName, cell(2), b.Title)
		f.SetCellValue(sheetName, cell(3), b.ISBN13)
		f.SetCellValue(sheetName, cell(4), b.AuthorName)
		f.SetCellValue(sheetName, cell(5), b.PublisherName)
		f.SetCellValue(sheetName, cell(6), b.Price)
		f.SetCellValue(sheetName, cell(7), b.DiscountPercent)
		f.SetCellValue(sheetName, cell(8), b.DiscountedPrice())
		f.SetCellValue(sheetName, cell(9), b.NumberOfPages)
		f.SetCellValue(sheetName, cell(10), b.Inventory)
		f.SetCellValue(sheetName, cell(11), b.PublicationDate.Format("2006-01-02"))
	}

	return f, nil
}
