package cli

import (
	"errors"
	"fmt"

	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/domain"
	"github.com/igosistemas/igo/internal/domain/policy"
)

// usersMenu administración de usuarios; solo el administrador pasa el gate.
func (c *CLI) usersMenu() {
	if !c.allowed(policy.ActionGerenciarUsuarios) {
		return
	}
	for {
		c.header("USUÁRIOS")
		fmt.Fprintln(c.out, "1 - Listar")
		fmt.Fprintln(c.out, "2 - Cadastrar")
		fmt.Fprintln(c.out, "3 - Editar")
		fmt.Fprintln(c.out, "4 - Excluir")
		fmt.Fprintln(c.out, "0 - Voltar")
		opt, err := c.readLine("\nEscolha uma opção: ")
		if err != nil {
			return
		}
		switch opt {
		case "1":
			c.printUsers(c.users.List())
		case "2":
			c.createUser()
		case "3":
			c.editUser()
		case "4":
			c.deleteUser()
		case "0":
			return
		default:
			fmt.Fprintln(c.out, "Opção inválida.")
		}
	}
}

func (c *CLI) createUser() {
	c.header("CADASTRAR USUÁRIO")
	var req dto.CreateUserRequest
	var err error
	if req.Username, err = c.readRequired("Username: "); err != nil {
		return
	}
	if req.Password, err = c.readRequired("Senha: "); err != nil {
		return
	}
	if req.Name, err = c.readRequired("Nome completo: "); err != nil {
		return
	}
	if req.Role, err = c.readRequired("Nível (administrador/gerente/vendedor/cliente): "); err != nil {
		return
	}
	if req.Email, err = c.readLine("Email: "); err != nil {
		return
	}
	user, err := c.users.Create(req)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			fmt.Fprintln(c.out, "Username já existe.")
			return
		}
		fmt.Fprintln(c.out, "Não foi possível cadastrar o usuário: dados inválidos.")
		return
	}
	fmt.Fprintf(c.out, "Usuário cadastrado com ID %d.\n", user.ID)
}

func (c *CLI) editUser() {
	id, err := c.readPositiveInt("ID do usuário: ")
	if err != nil {
		return
	}
	if _, err := c.users.Get(id); err != nil {
		fmt.Fprintln(c.out, "Usuário não encontrado.")
		return
	}
	fmt.Fprintln(c.out, "Deixe em branco para manter o valor atual.")
	var req dto.UpdateUserRequest
	if req.Name, err = c.readOptional("Nome: "); err != nil {
		return
	}
	if req.Role, err = c.readOptional("Nível: "); err != nil {
		return
	}
	if req.Email, err = c.readOptional("Email: "); err != nil {
		return
	}
	if req.Password, err = c.readOptional("Nova senha: "); err != nil {
		return
	}
	if _, err := c.users.Update(id, req); err != nil {
		fmt.Fprintln(c.out, "Não foi possível editar o usuário: dados inválidos.")
		return
	}
	fmt.Fprintln(c.out, "Usuário atualizado.")
}

func (c *CLI) deleteUser() {
	id, err := c.readPositiveInt("ID do usuário: ")
	if err != nil {
		return
	}
	if id == c.session.User.ID {
		fmt.Fprintln(c.out, "Não é possível excluir o próprio usuário da sessão.")
		return
	}
	ok, err := c.confirm("Confirma a exclusão?")
	if err != nil || !ok {
		return
	}
	if _, err := c.users.Delete(id); err != nil {
		fmt.Fprintln(c.out, "Usuário não encontrado.")
		return
	}
	fmt.Fprintln(c.out, "Usuário excluído.")
}
