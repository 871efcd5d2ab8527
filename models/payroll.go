package models

// SalarySlip is the monthly breakdown derived from an annual salary:
// basic 60%, house rent allowance 20%, special allowances 20%, with an
// estimated 10% tax deduction.
type SalarySlip struct {
	UserID           string  `json:"user_id"`
	UserName         string  `json:"user_name"`
	AnnualSalary     float64 `json:"annual_salary"`
	MonthlyGross     float64 `json:"monthly_gross"`
	BasicPay         float64 `json:"basic_pay"`
	HouseRentAllow   float64 `json:"hra"`
	SpecialAllowance float64 `json:"special_allowance"`
	TaxDeduction     float64 `json:"tax_deduction"`
	NetPayable       float64 `json:"net_payable"`
}

type SalaryUpdatePayload struct {
	Salary float64 `json:"salary" validate:"required,min=0"`
}
