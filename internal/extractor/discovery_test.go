package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdutoit/policyparse/constants"
	"github.com/jdutoit/policyparse/internal/corpus"
	"github.com/jdutoit/policyparse/internal/record"
)

func discoveryCorpus() *corpus.Corpus {
	return corpus.FromPages(map[int]string{
		1: `Discovery Insure
Plan Schedule
Plan number 4000638715
Plan type: Classic
Commencement date: 01/04/2015
Current monthly premium R 3,880.42
SASRIA R 5.10`,
		2: `Planholder Mr J du Toit Planholder type Natural person
Identity/passport number 8001015009087
Date of birth 01/01/1980
Marital status Married
Residential address 12 Oak Avenue, Cape Town Postal address PO Box 123, Cape Town
Home telephone number 0215551234
Cellphone number 0825551234
Email address j.dutoit@example.com
Payment method Debit Order
Account holder J du Toit Account number ****1234
Financial institution First National Bank Account type Cheque
Branch name and code Branch 250655 250655
Debit day 1
Payment frequency Monthly
Financial adviser name Mr A Broker Financial adviser code 123456
Commission split 20.00 %`,
		3: `Motor
1. VOLKSWAGEN, POLO 1.2 TSI
Registration CA123456
Primary driver details: Mr J du Toit
Comprehensive
Total R1,234.56
Year of manufacture 2018
Colour White
VIN number AAVZZZ6RZHU123456
Engine number CJZ123456
Tracking device Not fitted
Finance house: WesBank
Excess motor
Basic R5,000.00
Voluntary R2,000.00
Total R7,000.00`,
		4: `Motor continued
9. BMW, 320I
Registration CY98765
Comprehensive
Total R987.65
Year of manufacture 2020
VIN number WBA8E9G50GNT12345
Engine number B48B20A123456`,
		5: `Buildings
1. 12 Oak Avenue, Cape Town, 8001
Sum insured
R 1,500,000.00
Premium R350.00
Effective date: 01/04/2015
Comprehensive
1. 12 Oak Avenue, Cape Town, 8001
Premium R350.00`,
		6: `Household contents 1. 12 Oak Avenue, Cape Town Plan details
Sum insured R 250,000.00
Total R519.00
Effective date: 01/04/2015`,
		7: `Personal liability
Sum insured R10,000,000.00
Premium R45.00
Effective date: 01/04/2015`,
		8: `Benefits included at no cost
Emergency services
Hail warning notifications
Vitalitydrive Active
Rewards: Fuel rewards
R180.00`,
	})
}

func TestDiscoveryIdentify(t *testing.T) {
	e := NewDiscovery(nil)

	assert.True(t, e.Identify(discoveryCorpus()))
	assert.False(t, e.Identify(corpus.FromText("Santam Policy Schedule")))
	// The issuer anchor alone is not enough without a schedule anchor.
	assert.False(t, e.Identify(corpus.FromText("Discovery Insure marketing letter")))
}

func TestDiscoveryExtractHeader(t *testing.T) {
	env, err := NewDiscovery(nil).Extract(discoveryCorpus())
	require.NoError(t, err)
	assert.Equal(t, constants.ParseStatusParsed, env.Status)
	assert.Equal(t, "Discovery Insure", env.Insurer)

	rec, ok := env.Fields.(*record.Discovery)
	require.True(t, ok)

	require.NotNil(t, rec.PlanNumber)
	assert.Equal(t, "4000638715", *rec.PlanNumber)
	require.NotNil(t, rec.PlanType)
	assert.Equal(t, "Classic", *rec.PlanType)
	require.NotNil(t, rec.CommencementDate)
	assert.Equal(t, "01/04/2015", *rec.CommencementDate)
	require.NotNil(t, rec.CurrentMonthlyPremium)
	assert.InDelta(t, 3880.42, *rec.CurrentMonthlyPremium, 0.001)
	require.NotNil(t, rec.Sasria)
	assert.InDelta(t, 5.10, *rec.Sasria, 0.001)
}

func TestDiscoveryExtractPlanholder(t *testing.T) {
	env, err := NewDiscovery(nil).Extract(discoveryCorpus())
	require.NoError(t, err)
	rec := env.Fields.(*record.Discovery)

	p := rec.Planholder
	require.NotNil(t, p.Name)
	assert.Equal(t, "Mr J du Toit", *p.Name)
	require.NotNil(t, p.IDNumber)
	assert.Equal(t, "8001015009087", *p.IDNumber)
	require.NotNil(t, p.DateOfBirth)
	assert.Equal(t, "01/01/1980", *p.DateOfBirth)
	require.NotNil(t, p.ResidentialAddress)
	assert.Equal(t, "12 Oak Avenue, Cape Town", *p.ResidentialAddress)
	require.NotNil(t, p.Contact.Email)
	assert.Equal(t, "j.dutoit@example.com", *p.Contact.Email)

	pay := rec.Payment
	require.NotNil(t, pay.PaymentType)
	assert.Equal(t, "Debit Order", *pay.PaymentType)
	require.NotNil(t, pay.AccountNumber)
	assert.Equal(t, "****1234", *pay.AccountNumber)
	require.NotNil(t, pay.DebitDay)
	assert.Equal(t, 1, *pay.DebitDay)

	adv := rec.FinancialAdviser
	require.NotNil(t, adv.Name)
	assert.Equal(t, "Mr A Broker", *adv.Name)
	require.NotNil(t, adv.CommissionSplit)
	assert.InDelta(t, 20.0, *adv.CommissionSplit, 0.001)
}

func TestDiscoveryExtractVehicles(t *testing.T) {
	env, err := NewDiscovery(nil).Extract(discoveryCorpus())
	require.NoError(t, err)
	rec := env.Fields.(*record.Discovery)

	require.Len(t, rec.MotorVehicles, 2)

	v := rec.MotorVehicles[0]
	require.NotNil(t, v.VehicleNumber)
	assert.Equal(t, 1, *v.VehicleNumber)
	require.NotNil(t, v.Make)
	assert.Equal(t, "VOLKSWAGEN", *v.Make)
	require.NotNil(t, v.Model)
	assert.Equal(t, "POLO 1.2 TSI", *v.Model)
	require.NotNil(t, v.Registration)
	assert.Equal(t, "CA123456", *v.Registration)
	require.NotNil(t, v.Premium)
	assert.InDelta(t, 1234.56, *v.Premium, 0.001)
	require.NotNil(t, v.Excess.Basic)
	assert.InDelta(t, 5000, *v.Excess.Basic, 0.001)
	require.NotNil(t, v.Excess.Total)
	assert.InDelta(t, 7000, *v.Excess.Total, 0.001)
	require.NotNil(t, v.Details.VINNumber)
	assert.Equal(t, "AAVZZZ6RZHU123456", *v.Details.VINNumber)
	require.NotNil(t, v.Details.YearOfManufacture)
	assert.Equal(t, 2018, *v.Details.YearOfManufacture)

	// The declared item number is data; array position follows detection order.
	second := rec.MotorVehicles[1]
	require.NotNil(t, second.VehicleNumber)
	assert.Equal(t, 9, *second.VehicleNumber)
	require.NotNil(t, second.Make)
	assert.Equal(t, "BMW", *second.Make)
}

func TestDiscoveryExtractBuildingsDeduped(t *testing.T) {
	env, err := NewDiscovery(nil).Extract(discoveryCorpus())
	require.NoError(t, err)
	rec := env.Fields.(*record.Discovery)

	// The same address appears twice on the buildings page; one record.
	require.Len(t, rec.Buildings, 1)
	b := rec.Buildings[0]
	require.NotNil(t, b.Address)
	assert.Equal(t, "12 Oak Avenue, Cape Town, 8001", *b.Address)
	require.NotNil(t, b.SumInsured)
	assert.InDelta(t, 1500000, *b.SumInsured, 0.001)
	require.NotNil(t, b.Premium)
	assert.InDelta(t, 350, *b.Premium, 0.001)
}

func TestDiscoveryExtractContentsLiabilityBenefits(t *testing.T) {
	env, err := NewDiscovery(nil).Extract(discoveryCorpus())
	require.NoError(t, err)
	rec := env.Fields.(*record.Discovery)

	require.NotNil(t, rec.HouseholdContents)
	require.NotNil(t, rec.HouseholdContents.SumInsured)
	assert.InDelta(t, 250000, *rec.HouseholdContents.SumInsured, 0.001)

	require.NotNil(t, rec.PersonalLiability)
	require.NotNil(t, rec.PersonalLiability.SumInsured)
	assert.InDelta(t, 10000000, *rec.PersonalLiability.SumInsured, 0.001)

	assert.Equal(t, []string{"Emergency services", "Hail warning notifications"}, rec.BenefitsAtNoCost)

	require.NotNil(t, rec.VitalityDrive.Status)
	assert.Equal(t, "Active", *rec.VitalityDrive.Status)
}

func TestDiscoverySparseCorpus(t *testing.T) {
	// A schedule with only the header still parses; everything else is null.
	env, err := NewDiscovery(nil).Extract(corpus.FromText("Discovery Insure\nPlan Schedule\nPlan number 123"))
	require.NoError(t, err)
	assert.Equal(t, constants.ParseStatusParsed, env.Status)

	rec := env.Fields.(*record.Discovery)
	require.NotNil(t, rec.PlanNumber)
	assert.Equal(t, "123", *rec.PlanNumber)
	assert.Nil(t, rec.Planholder.Name)
	assert.Empty(t, rec.MotorVehicles)
	assert.Nil(t, rec.HouseholdContents)
}

func TestDiscoveryEmptyCorpus(t *testing.T) {
	_, err := NewDiscovery(nil).Extract(nil)
	require.Error(t, err)
}

func TestDiscoveryTablesFillSummary(t *testing.T) {
	// The layout text carries a competing premium; the table cell must win
	// and the text value only serves when no table mentions the field.
	c := corpus.FromPages(map[int]string{
		1: `Discovery Insure
Plan Schedule
Plan number 4000638715
Current monthly premium R 9,999.99`,
	})
	c.WithTables(1, []corpus.Table{{
		{"Current monthly premium", "R 4,119.69"},
		{"SASRIA", "R 5.10"},
		{"Personal liability", "R 10,000,000"},
	}})

	env, err := NewDiscovery(nil).Extract(c)
	require.NoError(t, err)
	rec := env.Fields.(*record.Discovery)

	require.NotNil(t, rec.CurrentMonthlyPremium)
	assert.Equal(t, 4119.69, *rec.CurrentMonthlyPremium)
	require.NotNil(t, rec.Sasria)
	assert.Equal(t, 5.10, *rec.Sasria)
	require.NotNil(t, rec.PersonalLiability)
	require.NotNil(t, rec.PersonalLiability.SumInsured)
	assert.Equal(t, float64(10000000), *rec.PersonalLiability.SumInsured)
}

func TestDiscoveryTableRowsSupplementEntities(t *testing.T) {
	c := corpus.FromPages(map[int]string{
		1: `Discovery Insure
Plan Schedule
Plan number 4000638715`,
		2: `Motor
1. FORD, FIESTA 1.0
Registration CA654321
Comprehensive
Total R1,234.56`,
	})
	c.WithTables(1, []corpus.Table{{
		{"Motor vehicles", "FORD, FIESTA 1.0, CA654321"},
		{"Motor vehicles", "AUDI, A3 35 TFSI"},
		{"Buildings", "12, Oak Avenue, Claremont, Cape Town, Western Cape"},
	}})

	env, err := NewDiscovery(nil).Extract(c)
	require.NoError(t, err)
	rec := env.Fields.(*record.Discovery)

	// The Ford exists as a text block already: the table row must not
	// duplicate it, and the block's detail fields survive.
	require.Len(t, rec.MotorVehicles, 2)
	ford := rec.MotorVehicles[0]
	require.NotNil(t, ford.Registration)
	assert.Equal(t, "CA654321", *ford.Registration)
	require.NotNil(t, ford.Premium)
	assert.Equal(t, 1234.56, *ford.Premium)

	// The Audi shows up only in the table and is appended as a skeleton row.
	audi := rec.MotorVehicles[1]
	require.NotNil(t, audi.Make)
	assert.Equal(t, "AUDI", *audi.Make)
	require.NotNil(t, audi.Model)
	assert.Equal(t, "A3 35 TFSI", *audi.Model)
	assert.Nil(t, audi.Registration)
	assert.Nil(t, audi.Premium)

	require.Len(t, rec.Buildings, 1)
	require.NotNil(t, rec.Buildings[0].Address)
	assert.Equal(t, "12, Oak Avenue, Claremont, Cape Town, Western Cape", *rec.Buildings[0].Address)
}
