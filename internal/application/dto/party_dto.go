package dto

import "github.com/shopspring/decimal"

// CreateSupplierRequest alta de proveedor.
type CreateSupplierRequest struct {
	Name    string
	TaxID   string
	Phone   string
	Email   string
	Address string
}

// UpdateSupplierRequest edición parcial de proveedor.
type UpdateSupplierRequest struct {
	Name    *string
	TaxID   *string
	Phone   *string
	Email   *string
	Address *string
}

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	Name    string
	TaxID   string
	Phone   string
	Email   string
	Address string
}

// UpdateCustomerRequest edición parcial de cliente.
type UpdateCustomerRequest struct {
	Name    *string
	TaxID   *string
	Phone   *string
	Email   *string
	Address *string
}

// CreateEmployeeRequest alta de funcionario.
type CreateEmployeeRequest struct {
	Name   string
	TaxID  string
	Role   string
	Phone  string
	Email  string
	Salary decimal.Decimal
}

// UpdateEmployeeRequest edición parcial de funcionario.
type UpdateEmployeeRequest struct {
	Name   *string
	Role   *string
	Phone  *string
	Email  *string
	Salary *decimal.Decimal
}
