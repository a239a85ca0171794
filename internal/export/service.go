// Package export renders a parse envelope as an XLSX workbook. It is a thin
// presentation layer: nothing is persisted, the caller gets bytes.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jdutoit/policyparse/internal/record"
)

// Service produces XLSX bytes for parsed schedules.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ScheduleXLSX returns a workbook for the envelope: a Summary sheet always,
// plus Vehicles/Buildings (Discovery) or Sections/Vehicles (Hollard) sheets
// when the record carries them.
func (s *Service) ScheduleXLSX(env *record.Envelope) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, err
	}

	rows := [][]any{
		{"Document Type", env.DocumentType},
		{"Document Type ID", env.DocumentTypeID},
		{"Insurer", env.Insurer},
		{"Status", string(env.Status)},
	}

	switch rec := env.Fields.(type) {
	case *record.Discovery:
		rows = append(rows,
			[]any{"Plan Number", deref(rec.PlanNumber)},
			[]any{"Plan Type", deref(rec.PlanType)},
			[]any{"Commencement Date", deref(rec.CommencementDate)},
			[]any{"Planholder", deref(rec.Planholder.Name)},
			[]any{"Current Monthly Premium", derefF(rec.CurrentMonthlyPremium)},
		)
		if err := s.discoverySheets(f, rec); err != nil {
			return nil, err
		}
	case *record.Hollard:
		rows = append(rows,
			[]any{"Quote Number", deref(rec.QuoteNumber)},
			[]any{"Policy Type", deref(rec.PolicyType)},
			[]any{"Start Date", deref(rec.StartDate)},
			[]any{"Policyholder", deref(rec.Policyholder.Name)},
			[]any{"Total Premium", derefF(rec.PremiumSchedule.TotalPremium)},
		)
		if err := s.hollardSheets(f, rec); err != nil {
			return nil, err
		}
	}

	if err := writeRows(f, summary, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Debug("xlsx export complete",
		"document_type", env.DocumentTypeID,
		"bytes", buf.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) discoverySheets(f *excelize.File, rec *record.Discovery) error {
	if len(rec.MotorVehicles) > 0 {
		rows := [][]any{{"#", "Make", "Model", "Registration", "Year", "VIN", "Premium"}}
		for i, v := range rec.MotorVehicles {
			rows = append(rows, []any{
				i + 1, deref(v.Make), deref(v.Model), deref(v.Registration),
				derefI(v.Details.YearOfManufacture), deref(v.Details.VINNumber), derefF(v.Premium),
			})
		}
		if err := addSheet(f, "Vehicles", rows); err != nil {
			return err
		}
	}
	if len(rec.Buildings) > 0 {
		rows := [][]any{{"#", "Address", "Sum Insured", "Premium", "Effective Date"}}
		for i, b := range rec.Buildings {
			rows = append(rows, []any{
				i + 1, deref(b.Address), derefF(b.SumInsured), derefF(b.Premium), deref(b.EffectiveDate),
			})
		}
		if err := addSheet(f, "Buildings", rows); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) hollardSheets(f *excelize.File, rec *record.Hollard) error {
	if len(rec.PremiumSchedule.Sections) > 0 {
		rows := [][]any{{"#", "Section", "Sasria", "Sum Insured", "Monthly Premium"}}
		for _, sec := range rec.PremiumSchedule.Sections {
			rows = append(rows, []any{
				sec.Number, sec.Name, sec.SasriaIncluded, derefF(sec.SumInsured), derefF(sec.MonthlyPremium),
			})
		}
		if err := addSheet(f, "Sections", rows); err != nil {
			return err
		}
	}
	if len(rec.MotorVehicles) > 0 {
		rows := [][]any{{"#", "Make", "Model", "Registration", "VIN", "Sum Insured", "Premium"}}
		for i, v := range rec.MotorVehicles {
			rows = append(rows, []any{
				i + 1, deref(v.Make), deref(v.Model), deref(v.Registration),
				deref(v.VINNumber), derefF(v.SumInsured), derefF(v.Premium),
			})
		}
		if err := addSheet(f, "Vehicles", rows); err != nil {
			return err
		}
	}
	return nil
}

func addSheet(f *excelize.File, name string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	return writeRows(f, name, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return err
			}
		}
	}
	return nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefF(p *float64) any {
	if p == nil {
		return ""
	}
	return *p
}

func derefI(p *int) any {
	if p == nil {
		return ""
	}
	return *p
}
