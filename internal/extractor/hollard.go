package extractor

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/jdutoit/policyparse/constants"
	"github.com/jdutoit/policyparse/internal/cascade"
	"github.com/jdutoit/policyparse/internal/corpus"
	"github.com/jdutoit/policyparse/internal/record"
)

const hollardInsurer = "Hollard Insurance"

var (
	hollardBrokerHdr  = regexp.MustCompile(`(?i)Broker details`)
	hollardInsurerHdr = regexp.MustCompile(`(?i)Insurer details`)
	hollardAdminHdr   = regexp.MustCompile(`(?i)DETAILS OF ADMINISTRATOR`)
	hollardSchedHdr   = regexp.MustCompile(`PREMIUM SCHEDULE AND INDEX OF COVER`)
	hollardSchedEnd   = regexp.MustCompile(`NOTE TO POLICYHOLDER|ACCEPTANCE`)
	hollardPrintDate  = regexp.MustCompile(`Print date`)

	// One included row of the index-of-cover table:
	// "1  Household Contents  YES  YES  R 250 000  R 123.45  R 456.78"
	// Anchored per line with space-only number classes; a greedy class with
	// \s would run over the newline and eat the next row's section number.
	hollardSectionRow = cascade.P(`(?m)^(\d+) +([\w \-]+?) +(YES|NO) +(YES|NO) +(?:R *)?([\d ,]+|-) +R *([\d ,.]+|-) +R? *([\d ,.]+|-) *$`)

	hollardAllRisksRow = cascade.CaseSensitive(`(ALL\d+)\s+([\w/ ]+?)\s{2,}([\w/ ()]+?)\s{2,}([\d\s,]+)\s+([\d,.]+)`)
)

// Hollard extracts Hollard Private Portfolio policy schedules.
type Hollard struct {
	logger *slog.Logger
}

func NewHollard(logger *slog.Logger) *Hollard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hollard{logger: logger}
}

func (e *Hollard) Identify(c *corpus.Corpus) bool {
	all := strings.ToUpper(c.AllText())
	if !strings.Contains(all, "HOLLARD") {
		return false
	}
	return strings.Contains(all, "PRIVATE PORTFOLIO") || strings.Contains(all, "HOLLARD INSURANCE")
}

func (e *Hollard) Extract(c *corpus.Corpus) (*record.Envelope, error) {
	if err := checkCorpus(c); err != nil {
		return nil, err
	}

	rec := record.NewHollard()
	all := c.AllText()

	guard(e.logger, "policy", func() { e.policyDetails(all, rec) })
	guard(e.logger, "policyholder", func() { e.policyholder(all, rec) })
	guard(e.logger, "broker", func() { e.broker(all, rec) })
	guard(e.logger, "insurer", func() { e.insurerDetails(all, rec) })
	guard(e.logger, "administrator", func() { e.administrator(all, rec) })
	guard(e.logger, "schedule", func() { e.premiumSchedule(all, rec) })
	guard(e.logger, "contents", func() { e.householdContents(c, rec) })
	guard(e.logger, "allrisks", func() { e.allRisks(c, rec) })
	guard(e.logger, "liability", func() { e.personalLiability(c, rec) })
	guard(e.logger, "vehicles", func() { e.motorVehicles(c, rec) })

	return &record.Envelope{
		Insurer: hollardInsurer,
		Status:  constants.ParseStatusParsed,
		Fields:  rec,
	}, nil
}

func (e *Hollard) policyDetails(all string, rec *record.Hollard) {
	rec.QuoteNumber = firstFromCascade(all, cascade.P(`Quote number.*?:\s*([A-Z0-9-]+)`))
	rec.PolicyType = firstFromCascade(all, cascade.P(`Type of policy\s*:\s*(\w+)`))
	rec.PeriodOfInsurance = firstFromCascade(all, cascade.CaseSensitive(`Period of insurance\s*:\s*\(A\)\s*([^\n]+)`))
	// Hollard prints dates in both slash and long form across revisions.
	rec.StartDate = date(cascade.First(all,
		cascade.CaseSensitive(`Start date\s*:\s*(\d{2}/\d{2}/\d{4})`),
		cascade.CaseSensitive(`Start date\s*:\s*(\d{1,2}\s+\w+\s+\d{4})`),
	))
}

func (e *Hollard) policyholder(all string, rec *record.Hollard) {
	p := &rec.Policyholder
	p.Name = firstFromCascade(all, cascade.CaseSensitive(`The policyholder\s*:\s*([^\n]+)`))
	if g, ok := cascade.TryExtract(all, []cascade.Pattern{
		cascade.P(`(?s)Address details\s*:\s*Physical\s+(.+?)(?:\nContact|Postal)`),
	}); ok {
		p.PhysicalAddress = linePtr(strings.ReplaceAll(g.Get(1), "\n", ", "))
	}
	p.Contact.Cellphone = strPtr(strings.ReplaceAll(
		cascade.First(all, cascade.CaseSensitive(`:\s*Cell\s+(\d[\d ]+)`)), " ", ""))
	p.Contact.Email = firstFromCascade(all, cascade.CaseSensitive(`:\s*E-mail\s+([^\s\n]+@[^\s\n]+)`))
	p.DateOfBirth = date(cascade.First(all, cascade.P(`Date of Birth\s*:\s*(\d{2}/\d{2}/\d{4})`)))
}

// party extracts the shared Company/Tel/E-mail/Website/Licence layout used by
// the broker, insurer, and administrator blocks. The scope is narrowed to one
// section first so that the three blocks cannot contaminate each other.
func (e *Hollard) party(scope string) record.Party {
	p := record.Party{}
	if scope == "" {
		return p
	}
	p.Company = firstFromCascade(scope, cascade.CaseSensitive(`Company\s*:\s*([^\n]+)`))
	p.Branch = firstFromCascade(scope, cascade.CaseSensitive(`Branch\s*:\s*([^\n]+)`))
	p.Tel = firstFromCascade(scope,
		cascade.CaseSensitive(`Tel\s+([^\n]+)`),
		cascade.CaseSensitive(`Work\s+([^\n]+)`),
	)
	p.Email = firstFromCascade(scope, cascade.CaseSensitive(`E-mail\s+([^\s\n]+@[^\s\n]+)`))
	p.Website = firstFromCascade(scope, cascade.CaseSensitive(`Website\s+([^\s\n]+)`))
	p.FSPLicence = firstFromCascade(scope, cascade.CaseSensitive(`Licence Number\s+(\d+)`))
	return p
}

func (e *Hollard) broker(all string, rec *record.Hollard) {
	rec.Broker = e.party(sectionScope(all, hollardBrokerHdr, hollardInsurerHdr))
}

func (e *Hollard) insurerDetails(all string, rec *record.Hollard) {
	rec.InsurerDetails = e.party(sectionScope(all, hollardInsurerHdr, hollardAdminHdr))
}

func (e *Hollard) administrator(all string, rec *record.Hollard) {
	rec.Administrator = e.party(sectionScope(all, hollardAdminHdr, hollardSchedHdr, hollardPrintDate))
}

func (e *Hollard) premiumSchedule(all string, rec *record.Hollard) {
	s := &rec.PremiumSchedule
	scope := sectionScope(all, hollardSchedHdr, hollardSchedEnd)
	if scope != "" {
		cascade.ForEach(scope, hollardSectionRow, func(g cascade.Groups) {
			if g.Get(3) != "YES" {
				return // excluded cover lines still appear in the table
			}
			num := intPtr(g.Get(1))
			if num == nil {
				return
			}
			s.Sections = append(s.Sections, record.ScheduleSection{
				Number:         *num,
				Name:           strings.TrimSpace(g.Get(2)),
				SasriaIncluded: g.Get(4) == "YES",
				SumInsured:     amount(g.Get(5)),
				MonthlyPremium: amount(g.Get(7)),
			})
		})

		s.TotalPremium = amount(cascade.First(scope, cascade.P(`Total Premium\s+R\s*-?\s*R\s*([\d\s,.]+)`)))
		s.TotalFees = amount(cascade.First(scope, cascade.P(`Total Fees\s+R\s*-?\s*R\s*([\d\s,.]+)`)))
		s.Sasria = amount(cascade.First(scope, cascade.P(`Sasria\s+R\s*-?\s*R\s*([\d\s,.]+)`)))
		s.GrandTotal = amount(cascade.First(scope, cascade.CaseSensitive(`TOTAL\s+R\s*-?\s*R\s*([\d\s,.]+)`)))
	}

	s.VATAmount = amount(cascade.First(all, cascade.P(`VAT of R([\d,.]+)`)))
	s.CommissionAmount = amount(cascade.First(all, cascade.P(`Commission of R([\d,.]+)`)))
}

func (e *Hollard) householdContents(c *corpus.Corpus, rec *record.Hollard) {
	for _, n := range c.PagesContaining("HOUSEHOLD CONTENTS", "Item Reference") {
		page := c.Page(n)
		guard(e.logger, "contents-item", func() {
			hc := record.HollardContents{}
			hc.ItemReference = firstFromCascade(page, cascade.CaseSensitive(`Item Reference\s*:\s*(\w+)`))
			if hc.ItemReference == nil {
				return
			}
			if g, ok := cascade.TryExtract(page, []cascade.Pattern{
				cascade.CaseSensitive(`(?s)RISK ADDRESS\s*:\s*(.+?)(?:\nRISK DETAILS|\nStart)`),
			}); ok {
				hc.RiskAddress = linePtr(strings.ReplaceAll(g.Get(1), "\n", ", "))
			}
			hc.StartDate = date(cascade.First(page, cascade.CaseSensitive(`Start date\s*:\s*(\d{1,2}\s+\w+\s+\d{4})`)))
			if g, ok := cascade.TryExtract(page, []cascade.Pattern{
				cascade.CaseSensitive(`Start date\s*:\s*\d{1,2}\s+\w+\s+\d{4}\s+([\d\s,]+)\s+([\d,.]+)`),
			}); ok {
				hc.SumInsured = amount(g.Get(1))
				hc.Premium = amount(g.Get(2))
			}
			hc.TypeOfHome = firstFromCascade(page, cascade.P(`Type of home\s*:\s*([^\n]+)`))
			hc.WallConstruction = firstFromCascade(page, cascade.P(`Wall construction\s*:\s*(\w+)`))
			hc.RoofConstruction = firstFromCascade(page, cascade.P(`Roof construction\s*:\s*(\w+)`))
			hc.CoverOption = firstFromCascade(page, cascade.P(`Cover option\s*:\s*([^\n]+)`))
			hc.BasicExcess = amount(cascade.First(page, cascade.P(`Basic excess\s*:\s*R\s*([\d\s,]+)`)))
			rec.HouseholdContents = append(rec.HouseholdContents, hc)
		})
	}
}

func (e *Hollard) allRisks(c *corpus.Corpus, rec *record.Hollard) {
	for _, n := range c.PagesContaining("ALL RISKS", "Item #") {
		page := c.Page(n)
		cascade.ForEach(page, hollardAllRisksRow, func(g cascade.Groups) {
			rec.AllRisks = append(rec.AllRisks, record.AllRisksItem{
				ItemNumber:  strPtr(g.Get(1)),
				Category:    strPtr(g.Get(2)),
				Description: strPtr(g.Get(3)),
				SumInsured:  amount(g.Get(4)),
				Premium:     amount(g.Get(5)),
			})
		})
	}
}

func (e *Hollard) personalLiability(c *corpus.Corpus, rec *record.Hollard) {
	page := c.FindPageContaining("PERSONAL LIABILITY", "Item Reference")
	if page == "" {
		return
	}
	pl := &record.HollardLiability{}
	pl.ItemReference = firstFromCascade(page, cascade.CaseSensitive(`Item Reference\s*:\s*(\w+)`))
	pl.StartDate = date(cascade.First(page, cascade.CaseSensitive(`Start date\s*:\s*(\d{1,2}\s+\w+\s+\d{4})`)))
	if g, ok := cascade.TryExtract(page, []cascade.Pattern{
		cascade.CaseSensitive(`Personal Liability\s+([\d\s,]+)\s+([\d,.]+)`),
	}); ok {
		pl.SumInsured = amount(g.Get(1))
		pl.Premium = amount(g.Get(2))
	}
	rec.PersonalLiability = pl
}

func (e *Hollard) motorVehicles(c *corpus.Corpus, rec *record.Hollard) {
	pageNums := c.PageNumbers()
	seen := map[string]bool{}

	for i, n := range pageNums {
		page := c.Page(n)
		if !strings.Contains(page, "MOTOR") || !strings.Contains(page, "Item Reference") || !strings.Contains(page, "Make") {
			continue
		}
		idx := i
		guard(e.logger, "vehicle", func() {
			v := e.vehicle(page)
			if v.Make == nil {
				return
			}
			if v.Registration != nil && seen[*v.Registration] {
				return
			}
			if v.Registration != nil {
				seen[*v.Registration] = true
			}
			// Driver details can run over onto the following page when the
			// vehicle block fills its page.
			if !e.driver(&v, page) && idx+1 < len(pageNums) {
				e.driver(&v, c.Page(pageNums[idx+1]))
			}
			rec.MotorVehicles = append(rec.MotorVehicles, v)
		})
	}
}

func (e *Hollard) vehicle(page string) record.HollardVehicle {
	v := record.HollardVehicle{}
	v.ItemReference = firstFromCascade(page, cascade.CaseSensitive(`Item Reference\s*:\s*(\w+)`))
	if g, ok := cascade.TryExtract(page, []cascade.Pattern{
		cascade.CaseSensitive(`(?s)RISK ADDRESS\s*:\s*(.+?)(?:\nRISK DETAILS)`),
	}); ok {
		v.RiskAddress = linePtr(strings.ReplaceAll(g.Get(1), "\n", ", "))
	}
	if g, ok := cascade.TryExtract(page, []cascade.Pattern{
		cascade.CaseSensitive(`Start date\s*:\s*(\d{1,2}\s+\w+\s+\d{4})\s+([\d,.]+)`),
	}); ok {
		v.StartDate = date(g.Get(1))
		v.Premium = amount(g.Get(2))
	}
	v.Make = firstFromCascade(page, cascade.CaseSensitive(`Make\s*:\s*([^\n]+)`))
	if g, ok := cascade.TryExtract(page, []cascade.Pattern{
		cascade.CaseSensitive(`Model\s*:\s*([^\n]+(?:\n[^\n]+)?)`),
	}); ok {
		v.Model = linePtr(g.Get(1))
	}
	v.YearOfManufacture = intPtr(cascade.First(page, cascade.P(`Year of manufacture\s*:\s*(\d{4})`)))
	v.Registration = firstFromCascade(page, cascade.CaseSensitive(`Registration number\s*:\s*([A-Z0-9]+)`))
	v.VINNumber = firstFromCascade(page, cascade.CaseSensitive(`VIN/Chassis number\s*:\s*([A-Z0-9]+)`))
	v.EngineNumber = firstFromCascade(page, cascade.CaseSensitive(`Engine number\s*:\s*([A-Z0-9]+)`))
	v.SumInsured = amount(cascade.First(page,
		cascade.P(`Final Sum Insured\s*:\s*([\d\s,]+)`),
		cascade.P(`Base Retail Value\s*:\s*([\d\s,]+)`),
	))
	v.Excess.Basic = amount(cascade.First(page, cascade.P(`Basic excess\s*:\s*R\s*([\d\s,]+)`)))
	v.Excess.Voluntary = amount(cascade.First(page, cascade.P(`Voluntary excess\s*:\s*R\s*([\d\s,]+)`)))
	return v
}

// driver fills the driver block from page text, reporting whether a driver
// section was present at all.
func (e *Hollard) driver(v *record.HollardVehicle, page string) bool {
	if !strings.Contains(page, "Driver Name") {
		return false
	}
	v.Driver.Name = firstFromCascade(page, cascade.CaseSensitive(`Driver Name\s*:\s*([^\n]+)`))
	v.Driver.DateOfBirth = date(cascade.First(page, cascade.CaseSensitive(`Date of Birth\s*:\s*(\d{1,2}\s+\w+\s+\d{4})`)))
	v.Driver.LicenceType = firstFromCascade(page, cascade.P(`Licen[cs]e Type\s*:\s*(\w+)`))
	return v.Driver.Name != nil
}
