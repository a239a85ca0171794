package extractor

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/jdutoit/policyparse/constants"
	"github.com/jdutoit/policyparse/internal/cascade"
	"github.com/jdutoit/policyparse/internal/corpus"
	"github.com/jdutoit/policyparse/internal/record"
	"github.com/jdutoit/policyparse/internal/segment"
)

const discoveryInsurer = "Discovery Insure"

// Vehicle items open with a numbered make/model header like
// "1. TOYOTA, HILUX 2.8 GD-6". The pattern anchors on the line start and the
// comma after an all-caps make to keep unrelated numbered lines out; this is
// still a heuristic and a capitalized line can be a false boundary.
var discoveryVehicleBoundary = regexp.MustCompile(`(?m)^\s*(\d+)\.\s+([A-Z][A-Z-]+),\s+([A-Z0-9][A-Z0-9 /.\-]*)`)

var discoveryBuildingBoundary = regexp.MustCompile(`(?m)^\s*\d+\.\s+\d+[^,\n]*,[^\n]+`)

// Summary-of-cover table rows: vehicle rows are gated on a known make, a
// risk address ends in the province. Both mirror how the upstream table
// pass lays cells out left to right.
var (
	discoveryTableMakes = []string{"FORD", "MERCEDES", "BMW", "VOLVO", "TOYOTA", "VOLKSWAGEN", "AUDI"}

	discoveryTableVehicle = regexp.MustCompile(`([A-Z][A-Z-]+),\s*([A-Z0-9 /.\-]+?)(?:,\s*([A-Z]{2,3}\d+)|$)`)
	discoveryTableAddress = regexp.MustCompile(`\d+,\s*[A-Za-z ]+,\s*[A-Za-z ]+,\s*[A-Za-z ]+,\s*(?:Western Cape|Gauteng)`)
)

// Discovery extracts Discovery Insure plan and quote schedules.
type Discovery struct {
	logger *slog.Logger
}

func NewDiscovery(logger *slog.Logger) *Discovery {
	if logger == nil {
		logger = slog.Default()
	}
	return &Discovery{logger: logger}
}

// Identify requires the issuer anchor plus a schedule anchor; "Comprehensive"
// alone is shared with other issuers and proves nothing.
func (e *Discovery) Identify(c *corpus.Corpus) bool {
	all := c.AllText()
	if !strings.Contains(all, "Discovery Insure") {
		return false
	}
	return strings.Contains(all, "Plan number") ||
		strings.Contains(all, "Plan Schedule") ||
		strings.Contains(all, "Quote Schedule")
}

func (e *Discovery) Extract(c *corpus.Corpus) (*record.Envelope, error) {
	if err := checkCorpus(c); err != nil {
		return nil, err
	}

	rec := record.NewDiscovery()
	all := c.AllText()

	guard(e.logger, "header", func() { e.header(all, rec) })
	guard(e.logger, "planholder", func() { e.planholder(all, rec) })
	guard(e.logger, "payment", func() { e.payment(all, rec) })
	guard(e.logger, "adviser", func() { e.adviser(all, rec) })
	guard(e.logger, "summary tables", func() { e.summaryTables(c, rec) })
	guard(e.logger, "summary", func() { e.summary(all, rec) })
	guard(e.logger, "vehicles", func() { e.vehicles(c, rec) })
	guard(e.logger, "buildings", func() { e.buildings(c, rec) })
	guard(e.logger, "table rows", func() { e.tableRows(c, rec) })
	guard(e.logger, "contents", func() { e.contents(c, rec) })
	guard(e.logger, "liability", func() { e.liability(c, rec) })
	guard(e.logger, "benefits", func() { e.benefits(all, rec) })
	guard(e.logger, "vitalitydrive", func() { e.vitalityDrive(all, rec) })

	return &record.Envelope{
		Insurer: discoveryInsurer,
		Status:  constants.ParseStatusParsed,
		Fields:  rec,
	}, nil
}

func (e *Discovery) header(all string, rec *record.Discovery) {
	// Issuers rephrase the plan-number label across form revisions; most
	// specific first, looser fallback after.
	rec.PlanNumber = firstFromCascade(all,
		cascade.P(`Plan number\s+(\d+)`),
		cascade.P(`Plan number:\s*(\d+)`),
		cascade.P(`Policy number\s*:?\s*(\d+)`),
	)
	rec.PlanType = firstFromCascade(all, cascade.P(`Plan type:\s*(\w+)`))
	rec.QuoteEffectiveDate = date(cascade.First(all, cascade.P(`Quote effective date:\s*(\d{2}/\d{2}/\d{4})`)))
	rec.CommencementDate = date(cascade.First(all, cascade.P(`Commencement date:\s*(\d{2}/\d{2}/\d{4})`)))
}

func (e *Discovery) planholder(all string, rec *record.Discovery) {
	p := &rec.Planholder
	p.Name = firstFromCascade(all,
		cascade.P(`Planholder\s+((?:Mr|Mrs|Ms|Miss|Dr)\s+[A-Za-z ]+?)(?:\s+Planholder type|\s+Natural)`),
		cascade.P(`Planholder\s+([A-Za-z ]+?)\s+Planholder type`),
	)
	p.PlanholderType = firstFromCascade(all, cascade.P(`Planholder type\s+(\w+(?:\s+\w+)?)`))
	p.IDNumber = firstFromCascade(all, cascade.P(`Identity/passport number\s+(\d+)`))
	p.DateOfBirth = date(cascade.First(all, cascade.P(`Date of birth\s+(\d{2}/\d{2}/\d{4})`)))
	p.MaritalStatus = firstFromCascade(all, cascade.P(`Marital status\s+(\w+)`))
	p.ResidentialAddress = linePtr(cascade.First(all,
		cascade.P(`Residential address\s+([^\n]+?)(?:\s+Postal address|\s+Home telephone)`)))
	p.PostalAddress = linePtr(cascade.First(all,
		cascade.P(`Postal address\s+([^\n]+?)(?:\s+Home telephone|\s+Work telephone)`)))
	p.Contact.HomePhone = firstFromCascade(all, cascade.P(`Home telephone number\s+(\d+)`))
	p.Contact.WorkPhone = firstFromCascade(all, cascade.P(`Work telephone number\s+(\d+)`))
	p.Contact.Cellphone = firstFromCascade(all, cascade.P(`Cellphone number\s+(\d+)`))
	p.Contact.Email = firstFromCascade(all, cascade.P(`Email address\s+([^\s]+@[^\s]+)`))
}

func (e *Discovery) payment(all string, rec *record.Discovery) {
	p := &rec.Payment
	switch {
	case strings.Contains(all, "Debit Order"):
		p.PaymentType = strPtr("Debit Order")
	case strings.Contains(all, "EFT"):
		p.PaymentType = strPtr("EFT")
	}
	p.AccountHolder = firstFromCascade(all, cascade.P(`Account holder\s+([A-Za-z ]+?)(?:\s+Account number)`))
	p.AccountNumber = firstFromCascade(all, cascade.P(`Account number\s+(\*+\d+|\d+)`))
	p.Bank = firstFromCascade(all, cascade.P(`Financial institution\s+([A-Za-z ]+?)(?:\s+Account type)`))
	p.AccountType = firstFromCascade(all, cascade.P(`Account type\s+(\w+)`))
	p.BranchCode = firstFromCascade(all,
		cascade.P(`Branch name and code\s+Branch \d+\s+(\d+)`),
		cascade.P(`Branch name and code\s+([^\n]+?)(?:\s+Debit day)`),
	)
	p.DebitDay = intPtr(cascade.First(all, cascade.P(`Debit day\s+(\d+)`)))
	p.PaymentFrequency = firstFromCascade(all, cascade.P(`Payment frequency\s+(\w+)`))
}

func (e *Discovery) adviser(all string, rec *record.Discovery) {
	a := &rec.FinancialAdviser
	a.Name = firstFromCascade(all,
		cascade.P(`Financial adviser name\s+((?:Mr|Mrs|Ms|Miss|Dr)\s+[A-Za-z ]+?)(?:\s+Financial adviser code)`))
	a.Code = firstFromCascade(all, cascade.P(`Financial adviser code\s+(\d+)`))
	a.CommissionSplit = amount(cascade.First(all, cascade.P(`Commission split\s+([\d.]+)\s*%`)))
}

// summaryTables reads the Summary of Cover scalars out of the per-page
// tables. Cell boundaries are more reliable than layout-preserved text, so
// the table pass runs first and the free-text patterns only fill what is
// still missing.
func (e *Discovery) summaryTables(c *corpus.Corpus, rec *record.Discovery) {
	eachTableRow(c, func(row string) {
		switch {
		case strings.Contains(row, "Current monthly premium"):
			if rec.CurrentMonthlyPremium == nil {
				rec.CurrentMonthlyPremium = amount(cascade.First(row, cascade.P(`R\s*([\d,\s]+\.\d{2})`)))
			}
		case strings.Contains(row, "SASRIA"):
			if rec.Sasria == nil {
				rec.Sasria = amount(cascade.First(row, cascade.P(`R\s*([\d,.\s]+)`)))
			}
		case strings.Contains(row, "Personal liability"):
			if s := amount(cascade.First(row, cascade.P(`R\s*([\d,]+,000)`))); s != nil {
				if rec.PersonalLiability == nil {
					rec.PersonalLiability = &record.Liability{}
				}
				if rec.PersonalLiability.SumInsured == nil {
					rec.PersonalLiability.SumInsured = s
				}
			}
		}
	})
}

// tableRows supplements the text-segmented entities: a vehicle or risk
// address that only shows up in a summary table is appended, while anything
// the page-text blocks already yielded is left alone (those blocks carry the
// richer per-item detail).
func (e *Discovery) tableRows(c *corpus.Corpus, rec *record.Discovery) {
	eachTableRow(c, func(row string) {
		upper := strings.ToUpper(row)
		for _, mk := range discoveryTableMakes {
			if !strings.Contains(upper, mk) {
				continue
			}
			if m := discoveryTableVehicle.FindStringSubmatch(upper); m != nil {
				v := record.MotorVehicle{
					Make:         strPtr(m[1]),
					Model:        linePtr(m[2]),
					Registration: strPtr(m[3]),
				}
				if !hasVehicle(rec.MotorVehicles, v) {
					rec.MotorVehicles = append(rec.MotorVehicles, v)
				}
			}
			break
		}
		if m := discoveryTableAddress.FindString(row); m != "" {
			addr := linePtr(m)
			if !hasBuilding(rec.Buildings, addr) {
				rec.Buildings = append(rec.Buildings, record.Building{Address: addr})
			}
		}
	})
}

func hasVehicle(vs []record.MotorVehicle, v record.MotorVehicle) bool {
	for _, x := range vs {
		if v.Registration != nil && x.Registration != nil && *x.Registration == *v.Registration {
			return true
		}
		if v.Make != nil && x.Make != nil && strings.EqualFold(*x.Make, *v.Make) &&
			v.Model != nil && x.Model != nil && strings.EqualFold(*x.Model, *v.Model) {
			return true
		}
	}
	return false
}

func hasBuilding(bs []record.Building, addr *string) bool {
	if addr == nil {
		return true
	}
	for _, b := range bs {
		if b.Address != nil && strings.EqualFold(*b.Address, *addr) {
			return true
		}
	}
	return false
}

func (e *Discovery) summary(all string, rec *record.Discovery) {
	if rec.CurrentMonthlyPremium == nil {
		rec.CurrentMonthlyPremium = amount(cascade.First(all,
			cascade.P(`Current monthly premium\s+R\s*([\d\s,]+\.\d{2})`),
			cascade.P(`Total monthly premium\s+R\s*([\d\s,]+\.\d{2})`),
		))
	}
	if rec.Sasria == nil {
		rec.Sasria = amount(cascade.First(all, cascade.P(`SASRIA\s+R\s*([\d,.\s]+)`)))
	}
}

func (e *Discovery) vehicles(c *corpus.Corpus, rec *record.Discovery) {
	// Restrict segmentation to pages that actually carry motor items; the
	// numbered-header heuristic is too loose for the summary pages.
	pages := c.PagesContaining("Registration")
	if len(pages) == 0 {
		return
	}
	blocks := segment.Segment(c, pages[0], pages[len(pages)-1], discoveryVehicleBoundary)

	for _, b := range blocks {
		block := b
		guard(e.logger, "vehicle", func() {
			v := e.vehicle(block)
			rec.MotorVehicles = append(rec.MotorVehicles, v)
		})
	}
}

func (e *Discovery) vehicle(b segment.Block) record.MotorVehicle {
	v := record.MotorVehicle{}

	if g, ok := cascade.TryExtract(b.Marker, []cascade.Pattern{
		cascade.CaseSensitive(`(\d+)\.\s+([A-Z][A-Z-]+),\s+(.+)`),
	}); ok {
		v.VehicleNumber = intPtr(g.Get(1))
		v.Make = strPtr(g.Get(2))
		v.Model = linePtr(g.Get(3))
	}

	v.Registration = firstFromCascade(b.Text, cascade.CaseSensitive(`Registration\s+([A-Z0-9]+)`))
	v.PrimaryDriver = firstFromCascade(b.Text, cascade.P(`Primary driver details:\s+([^\n]+)`))
	if strings.Contains(b.Text, "Comprehensive") {
		v.CoverType = strPtr("Comprehensive")
	}
	v.Premium = amount(cascade.First(b.Text,
		cascade.P(`Total\s+R([\d,]+\.\d{2})`),
		cascade.P(`Comprehensive\s*\(Motor\)[^\d]*R\s*([\d,]+\.\d{2})`),
	))

	if g, ok := cascade.TryExtract(b.Text, []cascade.Pattern{
		cascade.P(`(?s)Excess motor.*?Basic\s+R([\d,]+\.\d{2}).*?Voluntary\s+R([\d,]+\.\d{2}).*?Total\s+R([\d,]+\.\d{2})`),
	}); ok {
		v.Excess.Basic = amount(g.Get(1))
		v.Excess.Voluntary = amount(g.Get(2))
		v.Excess.Total = amount(g.Get(3))
	}

	v.Details.YearOfManufacture = intPtr(cascade.First(b.Text, cascade.P(`Year of manufacture\s+(\d{4})`)))
	v.Details.Colour = firstFromCascade(b.Text, cascade.P(`Colour\s+(\w+)`))
	// VIN and engine numbers are case-sensitive identifiers.
	v.Details.VINNumber = firstFromCascade(b.Text, cascade.CaseSensitive(`VIN number\s+([A-Z0-9]+)`))
	v.Details.EngineNumber = firstFromCascade(b.Text, cascade.CaseSensitive(`Engine number\s+([A-Z0-9]+)`))
	v.Details.TrackingDevice = firstFromCascade(b.Text, cascade.P(`Tracking device\s+([^\n]+)`))
	v.Details.FinanceHouse = firstFromCascade(b.Text, cascade.P(`Finance house:\s+([^\n]+)`))
	return v
}

func (e *Discovery) buildings(c *corpus.Corpus, rec *record.Discovery) {
	pages := c.PagesContaining("Buildings")
	if len(pages) == 0 {
		return
	}
	blocks := segment.Segment(c, pages[0], pages[len(pages)-1], discoveryBuildingBoundary)

	seen := map[string]bool{}
	for _, b := range blocks {
		block := b
		guard(e.logger, "building", func() {
			bld := record.Building{}
			bld.Address = linePtr(cascade.First(block.Marker, cascade.P(`\d+\.\s+(.+?)(?:\s+Registration|$)`)))
			if bld.Address == nil {
				return
			}
			key := strings.ToLower(*bld.Address)
			if seen[key] {
				return
			}
			seen[key] = true

			bld.SumInsured = amount(cascade.First(block.Text, cascade.P(`(?s)Sum insured.*?R\s*([\d,\s]+\.\d{2})`)))
			bld.Premium = amount(cascade.First(block.Text, cascade.P(`Premium\s+R([\d.,]+)`)))
			bld.EffectiveDate = date(cascade.First(block.Text, cascade.P(`Effective date:\s+(\d{2}/\d{2}/\d{4})`)))
			if strings.Contains(block.Text, "Comprehensive") {
				bld.CoverType = strPtr("Comprehensive")
			}
			if g, ok := cascade.TryExtract(block.Text, []cascade.Pattern{
				cascade.P(`(?s)Excess building.*?Basic\s+R([\d,]+\.\d{2}).*?Total\s+R([\d,]+\.\d{2})`),
			}); ok {
				bld.Excess.Basic = amount(g.Get(1))
				bld.Excess.Total = amount(g.Get(2))
			}
			rec.Buildings = append(rec.Buildings, bld)
		})
	}
}

func (e *Discovery) contents(c *corpus.Corpus, rec *record.Discovery) {
	page := c.FindPageContaining("Household contents")
	if page == "" {
		return
	}
	hc := &record.ContentsCover{}
	hc.Address = linePtr(cascade.First(page, cascade.P(`Household contents\s+\d+\.\s+(.+?)\s+Plan details`)))
	hc.SumInsured = amount(cascade.First(page, cascade.P(`(?s)Sum insured.*?R\s*([\d,\s]+\.\d{2})`)))
	hc.Premium = amount(cascade.First(page, cascade.P(`(?s)Total.*?R([\d,.]+)`)))
	hc.EffectiveDate = date(cascade.First(page, cascade.P(`Effective date:\s+(\d{2}/\d{2}/\d{4})`)))
	rec.HouseholdContents = hc
}

func (e *Discovery) liability(c *corpus.Corpus, rec *record.Discovery) {
	page := c.FindPageContaining("Personal liability")
	if page == "" {
		return
	}
	pl := rec.PersonalLiability
	if pl == nil {
		pl = &record.Liability{}
	}
	if pl.SumInsured == nil {
		pl.SumInsured = amount(cascade.First(page, cascade.P(`(?s)Sum insured.*?R([\d,]+\.\d{2})`)))
	}
	pl.Premium = amount(cascade.First(page, cascade.P(`(?s)Premium.*?R([\d.]+)`)))
	pl.EffectiveDate = date(cascade.First(page, cascade.P(`Effective date:\s+(\d{2}/\d{2}/\d{4})`)))
	rec.PersonalLiability = pl
}

func (e *Discovery) benefits(all string, rec *record.Discovery) {
	scope := sectionScope(all,
		regexp.MustCompile(`Benefits included at no cost`),
		regexp.MustCompile(`Additional Benefits`),
		regexp.MustCompile(`SASRIA`),
		regexp.MustCompile(`Vitalitydrive`),
	)
	if scope == "" {
		return
	}
	for _, line := range strings.Split(scope, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "R") {
			continue
		}
		rec.BenefitsAtNoCost = append(rec.BenefitsAtNoCost, line)
	}
}

func (e *Discovery) vitalityDrive(all string, rec *record.Discovery) {
	vd := &rec.VitalityDrive
	if g, ok := cascade.TryExtract(all, []cascade.Pattern{
		cascade.P(`Vitalitydrive\s+(Active|Inactive)`),
	}); ok {
		vd.Status = strPtr(g.Get(1))
	}
	vd.Rewards = firstFromCascade(all, cascade.P(`Rewards:\s*([A-Za-z ]+?)(?:\n|R\d|$)`))
	vd.Premium = amount(cascade.First(all,
		cascade.P(`(?m)Vitalitydrive[\s\S]*?R([\d,.]+)\s*$`),
		cascade.P(`(?s)Vitalitydrive.*?R([\d,.]+)`),
	))
}
