package record

// Discovery is the record shape for Discovery Insure plan/quote schedules.
type Discovery struct {
	PlanNumber            *string        `json:"planNumber"`
	PlanType              *string        `json:"planType"`
	QuoteEffectiveDate    *string        `json:"quoteEffectiveDate"`
	CommencementDate      *string        `json:"commencementDate"`
	Planholder            Planholder     `json:"planholder"`
	Payment               Payment        `json:"payment"`
	FinancialAdviser      Adviser        `json:"financialAdviser"`
	MotorVehicles         []MotorVehicle `json:"motorVehicles"`
	Buildings             []Building     `json:"buildings"`
	HouseholdContents     *ContentsCover `json:"householdContents"`
	PersonalLiability     *Liability     `json:"personalLiability"`
	BenefitsAtNoCost      []string       `json:"benefitsIncludedAtNoCost"`
	VitalityDrive         VitalityDrive  `json:"vitalityDrive"`
	Sasria                *float64       `json:"sasria"`
	CurrentMonthlyPremium *float64       `json:"currentMonthlyPremium"`
}

// NewDiscovery returns a Discovery record with its array fields initialized,
// so an empty schedule still marshals with [] rather than null.
func NewDiscovery() *Discovery {
	return &Discovery{
		MotorVehicles:    []MotorVehicle{},
		Buildings:        []Building{},
		BenefitsAtNoCost: []string{},
	}
}

// Planholder holds the insured person's details.
type Planholder struct {
	Name               *string `json:"name"`
	PlanholderType     *string `json:"planholderType"`
	IDNumber           *string `json:"idNumber"`
	DateOfBirth        *string `json:"dateOfBirth"`
	MaritalStatus      *string `json:"maritalStatus"`
	ResidentialAddress *string `json:"residentialAddress"`
	PostalAddress      *string `json:"postalAddress"`
	Contact            Contact `json:"contact"`
}

// Payment holds the banking/debit-order details.
type Payment struct {
	PaymentType      *string `json:"paymentType"`
	AccountHolder    *string `json:"accountHolder"`
	AccountNumber    *string `json:"accountNumber"`
	Bank             *string `json:"bank"`
	AccountType      *string `json:"accountType"`
	BranchCode       *string `json:"branchCode"`
	DebitDay         *int    `json:"debitDay"`
	PaymentFrequency *string `json:"paymentFrequency"`
}

// Adviser holds the financial adviser block.
type Adviser struct {
	Name            *string  `json:"name"`
	Code            *string  `json:"code"`
	CommissionSplit *float64 `json:"commissionSplit"`
}

// MotorVehicle is one insured vehicle. VehicleNumber is the number the
// schedule itself declares for the item; the array position comes from
// detection order and the two can disagree.
type MotorVehicle struct {
	VehicleNumber *int           `json:"vehicleNumber"`
	Make          *string        `json:"make"`
	Model         *string        `json:"model"`
	Registration  *string        `json:"registration"`
	PrimaryDriver *string        `json:"primaryDriver"`
	CoverType     *string        `json:"coverType"`
	Premium       *float64       `json:"premium"`
	Excess        Excess         `json:"excess"`
	Details       VehicleDetails `json:"details"`
}

// VehicleDetails holds the identification block of a vehicle.
type VehicleDetails struct {
	YearOfManufacture *int    `json:"yearOfManufacture"`
	Colour            *string `json:"colour"`
	VINNumber         *string `json:"vinNumber"`
	EngineNumber      *string `json:"engineNumber"`
	TrackingDevice    *string `json:"trackingDevice"`
	FinanceHouse      *string `json:"financeHouse"`
}

// Building is one insured building.
type Building struct {
	Address       *string  `json:"address"`
	EffectiveDate *string  `json:"effectiveDate"`
	SumInsured    *float64 `json:"sumInsured"`
	Premium       *float64 `json:"premium"`
	CoverType     *string  `json:"coverType"`
	Excess        Excess   `json:"excess"`
}

// ContentsCover is the household-contents section.
type ContentsCover struct {
	Address       *string  `json:"address"`
	EffectiveDate *string  `json:"effectiveDate"`
	SumInsured    *float64 `json:"sumInsured"`
	Premium       *float64 `json:"premium"`
}

// Liability is the personal-liability section.
type Liability struct {
	EffectiveDate *string  `json:"effectiveDate"`
	SumInsured    *float64 `json:"sumInsured"`
	Premium       *float64 `json:"premium"`
}

// VitalityDrive is the driver-rewards block on Discovery schedules.
type VitalityDrive struct {
	Status  *string  `json:"status"`
	Rewards *string  `json:"rewards"`
	Premium *float64 `json:"premium"`
}
