// Package userquery はユーザー集合に対するインメモリのクエリ操作を提供する。
// ソート、絞り込み、グループ化、集計、文字列連結を扱い、入力は変更しない。
package userquery

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/userquery/internal/app"
	"github.com/hitoshi/userquery/internal/model"
	"github.com/hitoshi/userquery/internal/user"
)

type (
	User      = model.User
	Privilege = model.Privilege
	APIError  = model.APIError
	Service   = user.Service
	Predicate = user.Predicate
	Mapper    = user.Mapper
)

const (
	Create = model.Create
	Read   = model.Read
	Update = model.Update
	Delete = model.Delete
)

// NoAverage は空の入力に対してAverageAgeが返す値。
const NoAverage = user.NoAverage

var (
	NewUser        = model.NewUser
	ParsePrivilege = model.ParsePrivilege
	AllPrivileges  = model.AllPrivileges

	All          = user.All
	Not          = user.Not
	OlderThan    = user.OlderThan
	YoungerThan  = user.YoungerThan
	HasPrivilege = user.HasPrivilege
	FirstNameIs  = user.FirstNameIs
	LastNameIs   = user.LastNameIs

	FirstName = user.FirstName
	LastName  = user.LastName
	FullName  = user.FullName
)

// New はメトリクスを記録しないServiceを返す。
func New() *Service {
	return user.NewService(nil)
}

// NewFromEnv は環境変数の設定に従ってログとメトリクスを初期化したServiceを返す。
// ログはwに出力し、メトリクスはregに登録する。regがnilの場合は記録しない。
func NewFromEnv(w io.Writer, reg prometheus.Registerer) (*Service, error) {
	cfg, err := app.Init(w)
	if err != nil {
		return nil, err
	}
	return app.NewQueryService(cfg, reg), nil
}
