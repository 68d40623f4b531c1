package userquery_test

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/userquery"
)

func TestNew_QueriesWithoutMetrics(t *testing.T) {
	svc := userquery.New()

	users := []userquery.User{
		userquery.NewUser("Ann", "Lee", 30, userquery.Read, userquery.Update),
		userquery.NewUser("Bo", "Kim", 40, userquery.Read),
	}

	names := svc.FirstNamesReverseSorted(users)
	if !slices.Equal(names, []string{"Bo", "Ann"}) {
		t.Errorf("FirstNamesReverseSorted = %v, want [Bo Ann]", names)
	}

	got, ok := svc.FirstUpdateUserOlderThan(users, 18)
	if !ok || got.FirstName != "Ann" {
		t.Errorf("FirstUpdateUserOlderThan = %v, %v; want Ann, true", got.FirstName, ok)
	}

	joined := svc.JoinToString(svc.FilterBy(users, userquery.HasPrivilege(userquery.Read)), ";", userquery.FullName)
	if joined != "Ann Lee;Bo Kim" {
		t.Errorf("JoinToString = %q, want %q", joined, "Ann Lee;Bo Kim")
	}
}

func TestNewFromEnv_RegistersMetrics(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv("USERQUERY_METRICS_ENABLED", "true")
	t.Setenv("USERQUERY_METRICS_NAMESPACE", "")
	t.Setenv("USERQUERY_LOG_LEVEL", "warn")

	var buf bytes.Buffer
	reg := prometheus.NewRegistry()

	svc, err := userquery.NewFromEnv(&buf, reg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got := svc.AverageAge(nil); got != userquery.NoAverage {
		t.Errorf("AverageAge(nil) = %v, want %v", got, userquery.NoAverage)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	found := false
	for _, mf := range families {
		if mf.GetName() == "userquery_query_total" {
			found = true
		}
	}
	if !found {
		t.Error("userquery_query_total metric not found")
	}
}

func TestNewFromEnv_InvalidConfig_ReturnsError(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv("USERQUERY_LOG_LEVEL", "chatty")

	var buf bytes.Buffer
	if _, err := userquery.NewFromEnv(&buf, nil); err == nil {
		t.Fatal("expected error for invalid log level, got nil")
	}
}
