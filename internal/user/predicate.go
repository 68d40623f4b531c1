package user

import "github.com/hitoshi/userquery/internal/model"

// Predicate はユーザーに対する条件。
type Predicate func(model.User) bool

// Mapper はユーザーを文字列に変換する。
type Mapper func(model.User) string

// All は全ての述語を満たす場合にtrueを返す述語を合成する。
// 述語が空の場合は常にtrueを返す。
func All(predicates ...Predicate) Predicate {
	return func(u model.User) bool {
		for _, p := range predicates {
			if !p(u) {
				return false
			}
		}
		return true
	}
}

// Not は述語の否定を返す。
func Not(p Predicate) Predicate {
	return func(u model.User) bool {
		return !p(u)
	}
}

// OlderThan は年齢がageより大きいユーザーにマッチする。
func OlderThan(age int) Predicate {
	return func(u model.User) bool {
		return u.Age > age
	}
}

// YoungerThan は年齢がageより小さいユーザーにマッチする。
func YoungerThan(age int) Predicate {
	return func(u model.User) bool {
		return u.Age < age
	}
}

// HasPrivilege は指定の権限を持つユーザーにマッチする。
func HasPrivilege(p model.Privilege) Predicate {
	return func(u model.User) bool {
		return u.HasPrivilege(p)
	}
}

func FirstNameIs(name string) Predicate {
	return func(u model.User) bool {
		return u.FirstName == name
	}
}

func LastNameIs(name string) Predicate {
	return func(u model.User) bool {
		return u.LastName == name
	}
}

// FirstName はファーストネームを返すMapper。
func FirstName(u model.User) string { return u.FirstName }

// LastName はラストネームを返すMapper。
func LastName(u model.User) string { return u.LastName }

// FullName は「ファーストネーム ラストネーム」形式の文字列を返すMapper。
func FullName(u model.User) string { return u.FirstName + " " + u.LastName }
