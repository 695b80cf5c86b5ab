package domain

// Decision 鉴权结果，Reason 仅用于日志/错误信息
type Decision struct {
	Allow  bool
	Reason string
}

func allow() Decision             { return Decision{Allow: true} }
func deny(reason string) Decision { return Decision{Allow: false, Reason: reason} }

// Authorize 是唯一的授权入口：角色要求 + 可选的记录级属主检查。
// requiredRole 为空表示任意已登录用户；ownerID 非 nil 时非 admin 必须是属主，
// admin 无条件跳过属主检查。调用前提：u 已通过认证（非 nil）。
func Authorize(u *User, requiredRole string, ownerID *uint) Decision {
	if u == nil {
		return deny("no authenticated user")
	}
	if requiredRole != "" && u.Role != requiredRole {
		return deny("role " + requiredRole + " required")
	}
	if ownerID != nil && !u.IsAdmin() && u.ID != *ownerID {
		return deny("not the owner of this record")
	}
	return allow()
}
