// Package model はドメインモデルを定義する。
package model

import (
	"slices"

	"github.com/google/uuid"
)

// User はクエリ対象のユーザーを表す。
// クエリ処理中はイミュータブルとして扱い、サービス側で変更しない。
type User struct {
	ID         string
	FirstName  string
	LastName   string
	Age        int
	Privileges []Privilege
}

// NewUser は新しいIDを採番したUserを生成する。
// 権限スライスは呼び出し元と共有しないようコピーする。
func NewUser(firstName, lastName string, age int, privileges ...Privilege) User {
	return User{
		ID:         uuid.NewString(),
		FirstName:  firstName,
		LastName:   lastName,
		Age:        age,
		Privileges: slices.Clone(privileges),
	}
}

// HasPrivilege はユーザーが指定の権限を保持しているかを返す。
func (u User) HasPrivilege(p Privilege) bool {
	return slices.Contains(u.Privileges, p)
}
