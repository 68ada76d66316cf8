package core

type Role string

const (
	RoleAdmin      Role = "admin"      // 管理員：員工、員工薪資、主管帳號
	RoleSupervisor Role = "supervisor" // 主管：生產、工人、產品、工人薪資
)

type Status string

const (
	StatusActive  Status = "active"  // 正常可用
	StatusBlocked Status = "blocked" // 被封鎖，無法登入
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSupervisor
}
