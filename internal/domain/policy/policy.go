// Package policy define la matriz de permisos por nivel de acceso.
// Es una tabla fija rol -> conjunto de acciones, sin jerarquía: cada rol
// enumera sus acciones de forma explícita.
package policy

import "github.com/igosistemas/igo/internal/domain/entity"

// Acciones del sistema. Los tags coinciden con los del documento histórico.
const (
	ActionCadastrarProduto      = "cadastrar_produto"
	ActionEditarProduto         = "editar_produto"
	ActionGerenciarEstoque      = "gerenciar_estoque"
	ActionAprovarPedidos        = "aprovar_pedidos"
	ActionGerarRelatorios       = "gerar_relatorios"
	ActionVisualizarProdutos    = "visualizar_produtos"
	ActionAtualizarEstoque      = "atualizar_estoque"
	ActionCriarPedidos          = "criar_pedidos"
	ActionVisualizarPedidos     = "visualizar_pedidos"
	ActionVisualizarMeusPedidos = "visualizar_meus_pedidos"

	// Sin entrada en la matriz: solo el administrador la ejerce.
	ActionGerenciarUsuarios = "gerenciar_usuarios"
)

// permissions acciones permitidas por rol. El administrador no aparece:
// tiene permiso incondicional sobre cualquier acción.
var permissions = map[string]map[string]struct{}{
	entity.RoleGerente: setOf(
		ActionCadastrarProduto,
		ActionEditarProduto,
		ActionGerenciarEstoque,
		ActionAprovarPedidos,
		ActionGerarRelatorios,
	),
	entity.RoleVendedor: setOf(
		ActionVisualizarProdutos,
		ActionAtualizarEstoque,
		ActionCriarPedidos,
		ActionVisualizarPedidos,
	),
	entity.RoleCliente: setOf(
		ActionVisualizarProdutos,
		ActionCriarPedidos,
		ActionVisualizarMeusPedidos,
	),
}

// Allowed indica si el rol puede ejecutar la acción. Rol desconocido o
// acción fuera del conjunto del rol -> denegado.
func Allowed(role, action string) bool {
	if role == entity.RoleAdministrador {
		return true
	}
	actions, ok := permissions[role]
	if !ok {
		return false
	}
	_, ok = actions[action]
	return ok
}

func setOf(actions ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(actions))
	for _, a := range actions {
		set[a] = struct{}{}
	}
	return set
}
