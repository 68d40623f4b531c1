package model

import "strings"

// Privilege はユーザーに付与される権限を表す。
// 同一性は列挙値で判定し、順序は宣言順とする。
type Privilege int

const (
	Create Privilege = iota
	Read
	Update
	Delete
)

var privilegeNames = [...]string{
	Create: "CREATE",
	Read:   "READ",
	Update: "UPDATE",
	Delete: "DELETE",
}

// AllPrivileges は全権限を宣言順で返す。
func AllPrivileges() []Privilege {
	return []Privilege{Create, Read, Update, Delete}
}

// String は権限名を返す。
func (p Privilege) String() string {
	if p < 0 || int(p) >= len(privilegeNames) {
		return "UNKNOWN"
	}
	return privilegeNames[p]
}

// ParsePrivilege は権限名からPrivilegeを取得する。大文字小文字は区別しない。
func ParsePrivilege(name string) (Privilege, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range privilegeNames {
		if n == upper {
			return Privilege(i), nil
		}
	}
	return 0, NewInvalidPrivilegeError(name)
}
