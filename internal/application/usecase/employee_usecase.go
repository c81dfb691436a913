package usecase

import (
	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/domain"
	"github.com/igosistemas/igo/internal/domain/entity"
	"github.com/igosistemas/igo/internal/store"
)

// EmployeeUseCase casos de uso CRUD para funcionarios.
type EmployeeUseCase struct {
	store *store.Store
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(st *store.Store) *EmployeeUseCase {
	return &EmployeeUseCase{store: st}
}

// Create da de alta un funcionario con fecha de admisión actual.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (entity.Employee, error) {
	if in.Name == "" || in.TaxID == "" || in.Role == "" {
		return entity.Employee{}, domain.ErrInvalidInput
	}
	if in.Salary.IsNegative() {
		return entity.Employee{}, domain.ErrInvalidInput
	}
	return uc.store.AddEmployee(entity.Employee{
		Name:    in.Name,
		TaxID:   in.TaxID,
		Role:    in.Role,
		Phone:   in.Phone,
		Email:   in.Email,
		Salary:  in.Salary,
		HiredAt: entity.Now(),
	})
}

// Get devuelve un funcionario por id.
func (uc *EmployeeUseCase) Get(id int) (entity.Employee, error) {
	return uc.store.GetEmployee(id)
}

// List devuelve todos los funcionarios.
func (uc *EmployeeUseCase) List() []entity.Employee {
	return uc.store.Employees(nil)
}

// Update edición parcial de funcionario.
func (uc *EmployeeUseCase) Update(id int, in dto.UpdateEmployeeRequest) (entity.Employee, error) {
	employee, err := uc.store.GetEmployee(id)
	if err != nil {
		return entity.Employee{}, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return entity.Employee{}, domain.ErrInvalidInput
		}
		employee.Name = *in.Name
	}
	if in.Role != nil {
		employee.Role = *in.Role
	}
	if in.Phone != nil {
		employee.Phone = *in.Phone
	}
	if in.Email != nil {
		employee.Email = *in.Email
	}
	if in.Salary != nil {
		if in.Salary.IsNegative() {
			return entity.Employee{}, domain.ErrInvalidInput
		}
		employee.Salary = *in.Salary
	}
	return uc.store.UpdateEmployee(id, employee)
}

// Delete elimina un funcionario por id.
func (uc *EmployeeUseCase) Delete(id int) (entity.Employee, error) {
	return uc.store.DeleteEmployee(id)
}
