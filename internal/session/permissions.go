package session

const (
	PermOrdersView   = "orders.view"
	PermOrdersEdit   = "orders.edit"
	PermOrdersAssign = "orders.assign"
	PermOrdersCancel = "orders.cancel"
	PermStatsView    = "stats.view"
	PermTeamView     = "team.view"
	PermTeamManage   = "team.manage"
)

// rolePermissions is static: what a session may do follows purely from which
// account logged in.
var rolePermissions = map[string][]string{
	"admin": {
		PermOrdersView, PermOrdersEdit, PermOrdersAssign, PermOrdersCancel,
		PermStatsView, PermTeamView, PermTeamManage,
	},
	"manager": {
		PermOrdersView, PermOrdersEdit, PermOrdersAssign,
		PermStatsView, PermTeamView,
	},
}

func HasPermission(role string, permission string) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
