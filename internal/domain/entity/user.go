package entity

// Niveles de acceso válidos para User.
const (
	RoleAdministrador = "administrador"
	RoleGerente       = "gerente"
	RoleVendedor      = "vendedor"
	RoleCliente       = "cliente"
)

// User representa un usuario del sistema. La contraseña se guarda en claro:
// el contrato del documento fija los usuarios semilla como pares
// username/senha literales y excluye el hashing.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"senha"`
	Name     string `json:"nome"`
	Role     string `json:"nivel_acesso"` // administrador, gerente, vendedor, cliente
	Email    string `json:"email"`
}

func (u *User) RecordID() int      { return u.ID }
func (u *User) SetRecordID(id int) { u.ID = id }
