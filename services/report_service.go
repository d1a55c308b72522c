package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sociobooks/sociobooks-backend/models"
	"github.com/sociobooks/sociobooks-backend/repository"
	"github.com/sociobooks/sociobooks-backend/utils"
)

// ReportService exports an account's books to an Excel workbook with
// Partners, Costs, Profits and Summary sheets.
type ReportService struct {
	store          repository.Store
	summaryService *SummaryService
}

// NewReportService creates a new report service
func NewReportService(store repository.Store, summaryService *SummaryService) *ReportService {
	return &ReportService{
		store:          store,
		summaryService: summaryService,
	}
}

// ExportBooks generates the workbook and a download filename.
func (s *ReportService) ExportBooks(ctx context.Context, accountID string) (*excelize.File, string, error) {
	partners, err := s.store.ListPartners(ctx, accountID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get partners: %v", err)
	}
	costs, err := s.store.ListCosts(ctx, accountID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get costs: %v", err)
	}
	profits, err := s.store.ListProfits(ctx, accountID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get profits: %v", err)
	}
	summary, err := s.summaryService.GetSummary(ctx, accountID, nil, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to compute summary: %v", err)
	}

	names := make(map[string]string, len(partners))
	for _, p := range partners {
		names[p.ID] = p.Name
	}

	f := excelize.NewFile()

	if err := s.createPartnerSheet(f, partners); err != nil {
		return nil, "", fmt.Errorf("failed to create partners sheet: %v", err)
	}
	if err := s.createCostSheet(f, costs, names); err != nil {
		return nil, "", fmt.Errorf("failed to create costs sheet: %v", err)
	}
	if err := s.createProfitSheet(f, profits, names); err != nil {
		return nil, "", fmt.Errorf("failed to create profits sheet: %v", err)
	}
	if err := s.createSummarySheet(f, summary); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}

	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Books_%s.xlsx",
		utils.CleanFileName(accountID),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

func (s *ReportService) createPartnerSheet(f *excelize.File, partners []models.Partner) error {
	sheetName := "Partners"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	writeHeaders(f, sheetName, []string{"Name", "Email", "Participation %", "Balance"})
	for i, p := range partners {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), p.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), p.Email)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), p.Participation)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), p.Balance)
	}
	return nil
}

func (s *ReportService) createCostSheet(f *excelize.File, costs []models.Cost, names map[string]string) error {
	sheetName := "Costs"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	writeHeaders(f, sheetName, []string{"Date", "Category", "Description", "Value", "Payer", "Recurrent", "Settled Shares"})
	for i, cost := range costs {
		settled := 0
		for _, payment := range cost.Payments {
			if payment.Paid {
				settled++
			}
		}
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), cost.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), cost.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), cost.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), cost.Value)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), names[cost.PayerID])
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), cost.IsRecurrent)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), fmt.Sprintf("%d/%d", settled, len(cost.Payments)))
	}
	return nil
}

func (s *ReportService) createProfitSheet(f *excelize.File, profits []models.Profit, names map[string]string) error {
	sheetName := "Profits"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	writeHeaders(f, sheetName, []string{"Date", "Category", "Source", "Value", "Distributed To"})
	for i, profit := range profits {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), profit.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), profit.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), profit.Source)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), profit.Value)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), fmt.Sprintf("%d partners", len(profit.Distributions)))
	}
	return nil
}

func (s *ReportService) createSummarySheet(f *excelize.File, summary *models.Summary) error {
	sheetName := "Summary"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}
	sheetIndex, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(sheetIndex)

	rows := [][]interface{}{
		{"Total Costs", summary.TotalCosts},
		{"Total Profits", summary.TotalProfits},
		{"Net Result", summary.NetResult},
		{"Recurrent Costs", summary.RecurrentCosts},
	}
	for i, r := range rows {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+1), r[0])
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+1), r[1])
	}

	balanceStart := len(rows) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", balanceStart), "Partner Balances:")
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", balanceStart), fmt.Sprintf("A%d", balanceStart), headerStyle)

	for i, balance := range summary.PartnerBalances {
		row := balanceStart + 1 + i
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), balance.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), balance.Balance)
	}
	return nil
}

func writeHeaders(f *excelize.File, sheetName string, headers []string) {
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)
}
