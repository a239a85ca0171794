package record

// Hollard is the record shape for Hollard Private Portfolio schedules.
type Hollard struct {
	QuoteNumber       *string            `json:"quoteNumber"`
	PolicyType        *string            `json:"policyType"`
	PeriodOfInsurance *string            `json:"periodOfInsurance"`
	StartDate         *string            `json:"startDate"`
	Policyholder      Policyholder       `json:"policyholder"`
	Broker            Party              `json:"broker"`
	InsurerDetails    Party              `json:"insurerDetails"`
	Administrator     Party              `json:"administrator"`
	PremiumSchedule   PremiumSchedule    `json:"premiumSchedule"`
	HouseholdContents []HollardContents  `json:"householdContents"`
	AllRisks          []AllRisksItem     `json:"allRisks"`
	PersonalLiability *HollardLiability  `json:"personalLiability"`
	MotorVehicles     []HollardVehicle   `json:"motorVehicles"`
}

// NewHollard returns a Hollard record with array fields initialized.
func NewHollard() *Hollard {
	return &Hollard{
		HouseholdContents: []HollardContents{},
		AllRisks:          []AllRisksItem{},
		MotorVehicles:     []HollardVehicle{},
		PremiumSchedule:   PremiumSchedule{Sections: []ScheduleSection{}},
	}
}

// Policyholder holds the Hollard policyholder block.
type Policyholder struct {
	Name            *string `json:"name"`
	PhysicalAddress *string `json:"physicalAddress"`
	DateOfBirth     *string `json:"dateOfBirth"`
	Contact         Contact `json:"contact"`
}

// Party is a broker/insurer/administrator block; the three share a layout.
type Party struct {
	Company    *string `json:"company"`
	Branch     *string `json:"branch"`
	Tel        *string `json:"tel"`
	Email      *string `json:"email"`
	Website    *string `json:"website"`
	FSPLicence *string `json:"fspLicence"`
}

// PremiumSchedule is the index-of-cover table with its totals.
type PremiumSchedule struct {
	Sections         []ScheduleSection `json:"sections"`
	TotalPremium     *float64          `json:"totalPremium"`
	TotalFees        *float64          `json:"totalFees"`
	Sasria           *float64          `json:"sasria"`
	GrandTotal       *float64          `json:"grandTotal"`
	VATAmount        *float64          `json:"vatAmount"`
	CommissionAmount *float64          `json:"commissionAmount"`
}

// ScheduleSection is one included row of the premium schedule.
type ScheduleSection struct {
	Number         int      `json:"number"`
	Name           string   `json:"name"`
	SasriaIncluded bool     `json:"sasriaIncluded"`
	SumInsured     *float64 `json:"sumInsured"`
	MonthlyPremium *float64 `json:"monthlyPremium"`
}

// HollardContents is one household-contents item.
type HollardContents struct {
	ItemReference    *string  `json:"itemReference"`
	RiskAddress      *string  `json:"riskAddress"`
	StartDate        *string  `json:"startDate"`
	SumInsured       *float64 `json:"sumInsured"`
	Premium          *float64 `json:"premium"`
	TypeOfHome       *string  `json:"typeOfHome"`
	WallConstruction *string  `json:"wallConstruction"`
	RoofConstruction *string  `json:"roofConstruction"`
	CoverOption      *string  `json:"coverOption"`
	BasicExcess      *float64 `json:"basicExcess"`
}

// AllRisksItem is one all-risks line item.
type AllRisksItem struct {
	ItemNumber  *string  `json:"itemNumber"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	SumInsured  *float64 `json:"sumInsured"`
	Premium     *float64 `json:"premium"`
}

// HollardLiability is the personal-liability item.
type HollardLiability struct {
	ItemReference *string  `json:"itemReference"`
	StartDate     *string  `json:"startDate"`
	SumInsured    *float64 `json:"sumInsured"`
	Premium       *float64 `json:"premium"`
}

// HollardVehicle is one insured vehicle on a Hollard schedule.
type HollardVehicle struct {
	ItemReference     *string  `json:"itemReference"`
	RiskAddress       *string  `json:"riskAddress"`
	StartDate         *string  `json:"startDate"`
	Make              *string  `json:"make"`
	Model             *string  `json:"model"`
	YearOfManufacture *int     `json:"yearOfManufacture"`
	Registration      *string  `json:"registration"`
	VINNumber         *string  `json:"vinNumber"`
	EngineNumber      *string  `json:"engineNumber"`
	SumInsured        *float64 `json:"sumInsured"`
	Premium           *float64 `json:"premium"`
	Excess            Excess   `json:"excess"`
	Driver            Driver   `json:"driver"`
}

// Driver is the regular-driver block attached to a Hollard vehicle.
type Driver struct {
	Name        *string `json:"name"`
	DateOfBirth *string `json:"dateOfBirth"`
	LicenceType *string `json:"licenceType"`
}
