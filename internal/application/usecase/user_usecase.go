package usecase

import (
	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/domain"
	"github.com/igosistemas/igo/internal/domain/entity"
	"github.com/igosistemas/igo/internal/store"
)

// validRoles niveles de acceso admitidos en altas y ediciones.
var validRoles = map[string]struct{}{
	entity.RoleAdministrador: {},
	entity.RoleGerente:       {},
	entity.RoleVendedor:      {},
	entity.RoleCliente:       {},
}

// UserUseCase administración de usuarios (solo administrador desde el menú).
type UserUseCase struct {
	store *store.Store
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(st *store.Store) *UserUseCase {
	return &UserUseCase{store: st}
}

// Create da de alta un usuario. El username es único en la colección.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (entity.User, error) {
	if in.Username == "" || in.Password == "" || in.Name == "" {
		return entity.User{}, domain.ErrInvalidInput
	}
	if _, ok := validRoles[in.Role]; !ok {
		return entity.User{}, domain.ErrInvalidInput
	}
	existing := uc.store.Users(func(u entity.User) bool {
		return u.Username == in.Username
	})
	if len(existing) > 0 {
		return entity.User{}, domain.ErrDuplicate
	}
	return uc.store.AddUser(entity.User{
		Username: in.Username,
		Password: in.Password,
		Name:     in.Name,
		Role:     in.Role,
		Email:    in.Email,
	})
}

// Get devuelve un usuario por id.
func (uc *UserUseCase) Get(id int) (entity.User, error) {
	return uc.store.GetUser(id)
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List() []entity.User {
	return uc.store.Users(nil)
}

// Update edición parcial de usuario. El nivel de acceso, si cambia, debe ser
// válido.
func (uc *UserUseCase) Update(id int, in dto.UpdateUserRequest) (entity.User, error) {
	user, err := uc.store.GetUser(id)
	if err != nil {
		return entity.User{}, err
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if _, ok := validRoles[*in.Role]; !ok {
			return entity.User{}, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil {
		if *in.Password == "" {
			return entity.User{}, domain.ErrInvalidInput
		}
		user.Password = *in.Password
	}
	return uc.store.UpdateUser(id, user)
}

// Delete elimina un usuario por id.
func (uc *UserUseCase) Delete(id int) (entity.User, error) {
	return uc.store.DeleteUser(id)
}
