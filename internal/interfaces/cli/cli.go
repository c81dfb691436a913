// Package cli implementa la superficie interactiva: login y árbol de menús
// por nivel de acceso. Es solo presentación: cada acción pasa por la matriz
// de permisos y delega en los casos de uso.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/igosistemas/igo/internal/application/auth"
	"github.com/igosistemas/igo/internal/application/dto"
	"github.com/igosistemas/igo/internal/application/inventory"
	"github.com/igosistemas/igo/internal/application/orders"
	"github.com/igosistemas/igo/internal/application/reports"
	"github.com/igosistemas/igo/internal/application/usecase"
	"github.com/igosistemas/igo/internal/domain"
	"github.com/igosistemas/igo/internal/domain/entity"
	"github.com/igosistemas/igo/internal/domain/policy"
	"github.com/igosistemas/igo/pkg/logger"
)

// Options dependencias y umbrales de la superficie interactiva.
type Options struct {
	Auth      *auth.AuthUseCase
	Users     *usecase.UserUseCase
	Products  *usecase.ProductUseCase
	Suppliers *usecase.SupplierUseCase
	Customers *usecase.CustomerUseCase
	Employees *usecase.EmployeeUseCase
	Inventory *inventory.UseCase
	Orders    *orders.UseCase
	Reports   *reports.UseCase

	LowStockThreshold int
	ExpiryWindowDays  int
	ReportDir         string

	In  io.Reader
	Out io.Writer
	Log *logger.Logger
}

// CLI superficie interactiva con la sesión activa.
type CLI struct {
	in  *bufio.Reader
	out io.Writer
	log *logger.Logger

	auth      *auth.AuthUseCase
	users     *usecase.UserUseCase
	products  *usecase.ProductUseCase
	suppliers *usecase.SupplierUseCase
	customers *usecase.CustomerUseCase
	employees *usecase.EmployeeUseCase
	inventory *inventory.UseCase
	orders    *orders.UseCase
	reports   *reports.UseCase

	lowStockThreshold int
	expiryWindowDays  int
	reportDir         string

	session *dto.Session
}

// New construye la superficie interactiva.
func New(opts Options) *CLI {
	return &CLI{
		in:                bufio.NewReader(opts.In),
		out:               opts.Out,
		log:               opts.Log,
		auth:              opts.Auth,
		users:             opts.Users,
		products:          opts.Products,
		suppliers:         opts.Suppliers,
		customers:         opts.Customers,
		employees:         opts.Employees,
		inventory:         opts.Inventory,
		orders:            opts.Orders,
		reports:           opts.Reports,
		lowStockThreshold: opts.LowStockThreshold,
		expiryWindowDays:  opts.ExpiryWindowDays,
		reportDir:         opts.ReportDir,
	}
}

// Run ejecuta el ciclo login -> menú principal hasta que el usuario salga.
func (c *CLI) Run() error {
	for {
		session, err := c.login()
		if err != nil {
			if errors.Is(err, errAborted) {
				fmt.Fprintln(c.out, "\nSaindo...")
				return nil
			}
			return err
		}
		c.session = session
		c.mainMenu()
		c.session = nil
	}
}

// login pide credenciales en bucle; ofrece la pista de contraseña ante un
// fallo, como el flujo de recuperación original.
func (c *CLI) login() (*dto.Session, error) {
	c.header("LOGIN - SISTEMA IGO")
	for {
		username, err := c.readRequired("Usuário: ")
		if err != nil {
			return nil, err
		}
		password, err := c.readRequired("Senha: ")
		if err != nil {
			return nil, err
		}
		session, err := c.auth.Login(dto.LoginRequest{Username: username, Password: password})
		if err == nil {
			fmt.Fprintf(c.out, "\nBem-vindo, %s (%s)\n", session.User.Name, session.User.Role)
			return session, nil
		}
		fmt.Fprintln(c.out, "Usuário ou senha incorretos.")
		forgot, err := c.confirm("Esqueceu a senha?")
		if err != nil {
			return nil, err
		}
		if forgot {
			c.passwordHint(username)
		}
	}
}

func (c *CLI) passwordHint(username string) {
	user, hint, err := c.auth.PasswordHint(username)
	if err != nil {
		fmt.Fprintln(c.out, "Usuário não encontrado.")
		return
	}
	fmt.Fprintf(c.out, "Usuário: %s\nNome: %s\nEmail: %s\n", user.Username, user.Name, user.Email)
	if hint != "" {
		fmt.Fprintf(c.out, "Sua senha padrão é: %s\n", hint)
		fmt.Fprintln(c.out, "Recomendamos alterar a senha após o primeiro acesso.")
	} else {
		fmt.Fprintln(c.out, "Usuário não possui senha padrão configurada.")
	}
}

// allowed verifica la acción contra el token de la sesión. Token inválido o
// expirado cierra la sesión.
func (c *CLI) allowed(action string) bool {
	if c.session == nil {
		return false
	}
	_, _, role, err := c.auth.Verify(c.session.Token)
	if err != nil {
		fmt.Fprintln(c.out, "Sessão expirada; faça login novamente.")
		c.session = nil
		return false
	}
	if !policy.Allowed(role, action) {
		fmt.Fprintln(c.out, "Acesso negado para o seu nível.")
		return false
	}
	return true
}

// allowedAny pasa si el rol de la sesión tiene alguna de las acciones.
func (c *CLI) allowedAny(actions ...string) bool {
	if c.session == nil {
		return false
	}
	_, _, role, err := c.auth.Verify(c.session.Token)
	if err != nil {
		fmt.Fprintln(c.out, "Sessão expirada; faça login novamente.")
		c.session = nil
		return false
	}
	for _, action := range actions {
		if policy.Allowed(role, action) {
			return true
		}
	}
	fmt.Fprintln(c.out, "Acesso negado para o seu nível.")
	return false
}

// mainMenu menú principal según el nivel de acceso de la sesión.
func (c *CLI) mainMenu() {
	for c.session != nil {
		c.header("MENU PRINCIPAL - IGO")
		var opt string
		var err error
		switch c.session.User.Role {
		case entity.RoleAdministrador:
			fmt.Fprintln(c.out, "1 - Cadastros")
			fmt.Fprintln(c.out, "2 - Controle de Estoque")
			fmt.Fprintln(c.out, "3 - Pedidos")
			fmt.Fprintln(c.out, "4 - Relatórios")
			fmt.Fprintln(c.out, "5 - Usuários")
			fmt.Fprintln(c.out, "6 - Alterar Senha")
			fmt.Fprintln(c.out, "0 - Sair")
			opt, err = c.readLine("\nEscolha uma opção: ")
			if err != nil {
				return
			}
			switch opt {
			case "1":
				c.registryMenu()
			case "2":
				c.stockMenu()
			case "3":
				c.ordersMenu()
			case "4":
				c.reportsMenu()
			case "5":
				c.usersMenu()
			case "6":
				c.changePassword()
			case "0":
				c.session = nil
			default:
				fmt.Fprintln(c.out, "Opção inválida.")
			}
		case entity.RoleGerente:
			fmt.Fprintln(c.out, "1 - Produtos")
			fmt.Fprintln(c.out, "2 - Controle de Estoque")
			fmt.Fprintln(c.out, "3 - Aprovar/Rejeitar Pedidos")
			fmt.Fprintln(c.out, "4 - Relatórios")
			fmt.Fprintln(c.out, "5 - Alterar Senha")
			fmt.Fprintln(c.out, "0 - Sair")
			opt, err = c.readLine("\nEscolha uma opção: ")
			if err != nil {
				return
			}
			switch opt {
			case "1":
				c.productsMenu()
			case "2":
				c.stockMenu()
			case "3":
				c.approveOrders()
			case "4":
				c.reportsMenu()
			case "5":
				c.changePassword()
			case "0":
				c.session = nil
			default:
				fmt.Fprintln(c.out, "Opção inválida.")
			}
		case entity.RoleVendedor:
			fmt.Fprintln(c.out, "1 - Visualizar Produtos")
			fmt.Fprintln(c.out, "2 - Atualizar Estoque")
			fmt.Fprintln(c.out, "3 - Criar Pedido")
			fmt.Fprintln(c.out, "4 - Visualizar Pedidos")
			fmt.Fprintln(c.out, "5 - Alterar Senha")
			fmt.Fprintln(c.out, "0 - Sair")
			opt, err = c.readLine("\nEscolha uma opção: ")
			if err != nil {
				return
			}
			switch opt {
			case "1":
				c.viewProducts()
			case "2":
				c.adjustStock()
			case "3":
				c.createOrder()
			case "4":
				c.viewOrders()
			case "5":
				c.changePassword()
			case "0":
				c.session = nil
			default:
				fmt.Fprintln(c.out, "Opção inválida.")
			}
		case entity.RoleCliente:
			fmt.Fprintln(c.out, "1 - Visualizar Produtos")
			fmt.Fprintln(c.out, "2 - Criar Pedido")
			fmt.Fprintln(c.out, "3 - Meus Pedidos")
			fmt.Fprintln(c.out, "4 - Alterar Senha")
			fmt.Fprintln(c.out, "0 - Sair")
			opt, err = c.readLine("\nEscolha uma opção: ")
			if err != nil {
				return
			}
			switch opt {
			case "1":
				c.viewProducts()
			case "2":
				c.createOrder()
			case "3":
				c.myOrders()
			case "4":
				c.changePassword()
			case "0":
				c.session = nil
			default:
				fmt.Fprintln(c.out, "Opção inválida.")
			}
		default:
			fmt.Fprintln(c.out, "Nível de acesso inválido.")
			c.session = nil
		}
	}
}

func (c *CLI) changePassword() {
	c.header("ALTERAR SENHA")
	current, err := c.readRequired("Senha atual: ")
	if err != nil {
		return
	}
	newPass, err := c.readRequired("Nova senha: ")
	if err != nil {
		return
	}
	confirm, err := c.readRequired("Confirmar nova senha: ")
	if err != nil {
		return
	}
	err = c.auth.ChangePassword(dto.ChangePasswordRequest{
		UserID:  c.session.User.ID,
		Current: current,
		New:     newPass,
		Confirm: confirm,
	})
	switch {
	case err == nil:
		fmt.Fprintln(c.out, "Senha alterada com sucesso.")
	case errors.Is(err, domain.ErrUnauthorized):
		fmt.Fprintln(c.out, "Senha atual incorreta.")
	default:
		fmt.Fprintln(c.out, "As senhas não coincidem ou são inválidas.")
	}
}
