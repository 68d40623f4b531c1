package model

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser_AssignsUUID(t *testing.T) {
	u := NewUser("Ann", "Lee", 30, Read)

	if _, err := uuid.Parse(u.ID); err != nil {
		t.Fatalf("ID %q is not a valid UUID: %v", u.ID, err)
	}
	if other := NewUser("Ann", "Lee", 30, Read); other.ID == u.ID {
		t.Error("expected distinct IDs for distinct users")
	}
	if u.FirstName != "Ann" || u.LastName != "Lee" || u.Age != 30 {
		t.Errorf("unexpected user fields: %+v", u)
	}
}

func TestNewUser_CopiesPrivileges(t *testing.T) {
	privs := []Privilege{Read, Update}
	u := NewUser("Ann", "Lee", 30, privs...)

	privs[0] = Delete

	if u.Privileges[0] != Read {
		t.Errorf("Privileges[0] = %v, want %v", u.Privileges[0], Read)
	}
}

func TestUser_HasPrivilege(t *testing.T) {
	u := NewUser("Ann", "Lee", 30, Read, Update)

	if !u.HasPrivilege(Update) {
		t.Error("expected HasPrivilege(UPDATE) to be true")
	}
	if u.HasPrivilege(Delete) {
		t.Error("expected HasPrivilege(DELETE) to be false")
	}
}

func TestPrivilege_StringAndParse(t *testing.T) {
	for _, p := range AllPrivileges() {
		got, err := ParsePrivilege(p.String())
		if err != nil {
			t.Fatalf("ParsePrivilege(%q) returned error: %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParsePrivilege(%q) = %v, want %v", p.String(), got, p)
		}
	}

	if got, err := ParsePrivilege(" update "); err != nil || got != Update {
		t.Errorf("ParsePrivilege(\" update \") = %v, %v; want UPDATE, nil", got, err)
	}
	if got := Privilege(42).String(); got != "UNKNOWN" {
		t.Errorf("Privilege(42).String() = %q, want %q", got, "UNKNOWN")
	}
}

func TestPrivilege_DeclarationOrder(t *testing.T) {
	all := AllPrivileges()
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Errorf("privileges not in declaration order: %v", all)
		}
	}
}

func TestParsePrivilege_Unknown_ReturnsAPIError(t *testing.T) {
	_, err := ParsePrivilege("EXECUTE")
	if err == nil {
		t.Fatal("expected error for unknown privilege, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Code != ErrCodeInvalidPrivilege {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrCodeInvalidPrivilege)
	}
	if apiErr.Error() != "[INVALID_PRIVILEGE] 無効な権限です: EXECUTE" {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}
