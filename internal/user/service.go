// Package user はユーザー集合に対するクエリ処理を提供する。
package user

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/hitoshi/userquery/internal/metrics"
	"github.com/hitoshi/userquery/internal/model"
)

// 操作名。メトリクスのラベルとログに使う。
const (
	OpFirstNamesReverseSorted  = "first_names_reverse_sorted"
	OpSortByAgeDescAndNameAsc  = "sort_by_age_desc_and_name_asc"
	OpAllDistinctPrivileges    = "all_distinct_privileges"
	OpFirstUpdateUserOlderThan = "first_update_user_older_than"
	OpGroupByPrivilegeCount    = "group_by_privilege_count"
	OpAverageAge               = "average_age"
	OpMostFrequentLastName     = "most_frequent_last_name"
	OpFilterBy                 = "filter_by"
	OpJoinToString             = "join_to_string"
	OpGroupByPrivilege         = "group_by_privilege"
	OpLastNameCounts           = "last_name_counts"
)

// NoAverage は空の入力に対してAverageAgeが返す値。
const NoAverage = -1.0

// Service はユーザー集合のクエリサービス。
// 状態を持たず、各操作は入力を変更せずに新しい結果を返す。
type Service struct {
	recorder metrics.QueryRecorder
}

// NewService はServiceの新しいインスタンスを生成する。
// recorderがnilの場合はメトリクスを記録しない。
func NewService(recorder metrics.QueryRecorder) *Service {
	return &Service{recorder: recorder}
}

// observe は操作の開始を記録し、終了時に呼ぶ関数を返す。
func (s *Service) observe(operation string, users int) func() {
	start := time.Now()
	return func() {
		slog.Debug("query executed",
			slog.String("operation", operation),
			slog.Int("users", users),
		)
		if s.recorder != nil {
			s.recorder.RecordQuery(operation, users, time.Since(start))
		}
	}
}

// FirstNamesReverseSorted はファーストネームを降順（コードポイント順）に並べて返す。
// 重複はそのまま残す。
func (s *Service) FirstNamesReverseSorted(users []model.User) []string {
	defer s.observe(OpFirstNamesReverseSorted, len(users))()

	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.FirstName)
	}
	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(b, a)
	})
	return names
}

// SortByAgeDescAndNameAsc は年齢の降順、同年齢ならファーストネームの昇順で安定ソートする。
func (s *Service) SortByAgeDescAndNameAsc(users []model.User) []model.User {
	defer s.observe(OpSortByAgeDescAndNameAsc, len(users))()

	sorted := make([]model.User, len(users))
	copy(sorted, users)
	slices.SortStableFunc(sorted, func(a, b model.User) int {
		if c := cmp.Compare(b.Age, a.Age); c != 0 {
			return c
		}
		return strings.Compare(a.FirstName, b.FirstName)
	})
	return sorted
}

// AllDistinctPrivileges は全ユーザーの権限を初出順に重複なく返す。
func (s *Service) AllDistinctPrivileges(users []model.User) []model.Privilege {
	defer s.observe(OpAllDistinctPrivileges, len(users))()

	seen := make(map[model.Privilege]struct{})
	privileges := make([]model.Privilege, 0)
	for _, u := range users {
		for _, p := range u.Privileges {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			privileges = append(privileges, p)
		}
	}
	return privileges
}

// FirstUpdateUserOlderThan はageより年上でUPDATE権限を持つユーザーを返す。
// 複数該当する場合は入力順で最初のユーザー。該当なしの場合はfalseを返す。
func (s *Service) FirstUpdateUserOlderThan(users []model.User, age int) (model.User, bool) {
	defer s.observe(OpFirstUpdateUserOlderThan, len(users))()

	match := All(OlderThan(age), HasPrivilege(model.Update))
	for _, u := range users {
		if match(u) {
			return u, true
		}
	}
	return model.User{}, false
}

// GroupByPrivilegeCount は保持する権限数（重複を含むスライス長）ごとにユーザーをグループ化する。
func (s *Service) GroupByPrivilegeCount(users []model.User) map[int][]model.User {
	defer s.observe(OpGroupByPrivilegeCount, len(users))()

	groups := make(map[int][]model.User)
	for _, u := range users {
		n := len(u.Privileges)
		groups[n] = append(groups[n], u)
	}
	return groups
}

// AverageAge は年齢の算術平均を返す。入力が空の場合はNoAverage（-1）を返す。
func (s *Service) AverageAge(users []model.User) float64 {
	defer s.observe(OpAverageAge, len(users))()

	if len(users) == 0 {
		return NoAverage
	}
	var sum int64
	for _, u := range users {
		sum += int64(u.Age)
	}
	return float64(sum) / float64(len(users))
}

// MostFrequentLastName は最も多く出現するラストネームを返す。
// 最多出現数を複数のラストネームが分け合う場合と入力が空の場合はfalseを返す。
func (s *Service) MostFrequentLastName(users []model.User) (string, bool) {
	defer s.observe(OpMostFrequentLastName, len(users))()

	var (
		best   string
		top    int
		unique bool
	)
	for name, n := range countLastNames(users) {
		switch {
		case n > top:
			best, top, unique = name, n, true
		case n == top:
			unique = false
		}
	}
	if !unique {
		return "", false
	}
	return best, true
}

// FilterBy は全ての述語を満たすユーザーだけを入力順で返す。
// 述語を指定しない場合は全ユーザーを返す。
func (s *Service) FilterBy(users []model.User, predicates ...Predicate) []model.User {
	defer s.observe(OpFilterBy, len(users))()

	match := All(predicates...)
	filtered := make([]model.User, 0, len(users))
	for _, u := range users {
		if match(u) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// JoinToString は各ユーザーをmapFnで文字列化し、delimiterで連結する。
func (s *Service) JoinToString(users []model.User, delimiter string, mapFn Mapper) string {
	defer s.observe(OpJoinToString, len(users))()

	parts := make([]string, 0, len(users))
	for _, u := range users {
		parts = append(parts, mapFn(u))
	}
	return strings.Join(parts, delimiter)
}

// GroupByPrivilege は権限ごとにその権限を持つユーザーを入力順でまとめる。
// 同じ権限が重複して格納されていても、ユーザーは各グループに1回だけ現れる。
func (s *Service) GroupByPrivilege(users []model.User) map[model.Privilege][]model.User {
	defer s.observe(OpGroupByPrivilege, len(users))()

	groups := make(map[model.Privilege][]model.User)
	for _, u := range users {
		added := make(map[model.Privilege]struct{}, len(u.Privileges))
		for _, p := range u.Privileges {
			if _, ok := added[p]; ok {
				continue
			}
			added[p] = struct{}{}
			groups[p] = append(groups[p], u)
		}
	}
	return groups
}

// LastNameCounts はラストネームごとのユーザー数を返す。
func (s *Service) LastNameCounts(users []model.User) map[string]int {
	defer s.observe(OpLastNameCounts, len(users))()

	return countLastNames(users)
}

func countLastNames(users []model.User) map[string]int {
	counts := make(map[string]int)
	for _, u := range users {
		counts[u.LastName]++
	}
	return counts
}
