package service

import (
	"context"
	"errors"
	"testing"

	"github.com/99minutos/reservation-system/internal/core/domain"
)

func TestAccountDirectory_Create_Success(t *testing.T) {
	kv := newStubKV()
	dir := NewAccountDirectory(kv, discardLogger)

	acc, err := dir.Create(context.Background(), "Ana", "ana", "pw2", domain.RoleUser)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if acc.Username != "ana" || acc.DisplayName != "Ana" || acc.Role != domain.RoleUser {
		t.Fatalf("unexpected account: %+v", acc)
	}

	want := `{"name":"Ana","username":"ana","password":"pw2","role":"user"}`
	if kv.data["ana"] != want {
		t.Fatalf("unexpected stored record:\n got  %s\n want %s", kv.data["ana"], want)
	}
}

func TestAccountDirectory_Create_Duplicate(t *testing.T) {
	kv := newStubKV()
	dir := NewAccountDirectory(kv, discardLogger)
	ctx := context.Background()

	if _, err := dir.Create(ctx, "Ana", "ana", "pw2", domain.RoleUser); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	before := kv.data["ana"]

	if _, err := dir.Create(ctx, "Other", "ana", "changed", domain.RoleAdmin); err != domain.ErrAccountExists {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
	if kv.data["ana"] != before {
		t.Fatalf("original record changed: %s", kv.data["ana"])
	}

	acc, err := dir.FindByCredentials(ctx, "ana", "pw2")
	if err != nil || acc.Password != "pw2" {
		t.Fatalf("original password lost: %+v %v", acc, err)
	}
}

func TestAccountDirectory_Create_Validation(t *testing.T) {
	dir := NewAccountDirectory(newStubKV(), discardLogger)
	ctx := context.Background()

	cases := []struct {
		name               string
		username, password string
		role               domain.Role
		want               error
	}{
		{"empty username", "", "pw", domain.RoleUser, domain.ErrInvalidAccount},
		{"empty password", "bob", "", domain.RoleUser, domain.ErrInvalidAccount},
		{"reserved session key", "session", "pw", domain.RoleUser, domain.ErrInvalidAccount},
		{"reserved scoped session key", "session:abc", "pw", domain.RoleUser, domain.ErrInvalidAccount},
		{"reserved reservations key", "reservas", "pw", domain.RoleUser, domain.ErrInvalidAccount},
		{"unknown role", "bob", "pw", domain.Role("superuser"), domain.ErrInvalidRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := dir.Create(ctx, "x", tc.username, tc.password, tc.role); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAccountDirectory_Create_StoreError(t *testing.T) {
	kv := newStubKV()
	kv.setErr = errStoreDown
	dir := NewAccountDirectory(kv, discardLogger)

	_, err := dir.Create(context.Background(), "Ana", "ana", "pw", domain.RoleUser)
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestAccountDirectory_FindByCredentials(t *testing.T) {
	dir := NewAccountDirectory(newStubKV(), discardLogger)
	ctx := context.Background()
	if _, err := dir.Create(ctx, "Boss", "boss", "pw1", domain.RoleAdmin); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	acc, err := dir.FindByCredentials(ctx, "boss", "pw1")
	if err != nil {
		t.Fatalf("FindByCredentials returned error: %v", err)
	}
	if acc.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", acc.Role)
	}

	for _, pw := range []string{"PW1", "pw1 ", " pw1", "pw", ""} {
		if _, err := dir.FindByCredentials(ctx, "boss", pw); err != domain.ErrAccountNotFound {
			t.Fatalf("password %q: expected ErrAccountNotFound, got %v", pw, err)
		}
	}
	if _, err := dir.FindByCredentials(ctx, "Boss", "pw1"); err != domain.ErrAccountNotFound {
		t.Fatalf("username lookup must be case-sensitive, got %v", err)
	}
	if _, err := dir.FindByCredentials(ctx, "ghost", "pw1"); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountDirectory_LegacyRoleReadsAsUser(t *testing.T) {
	kv := newStubKV()
	kv.data["old"] = `{"name":"Old","username":"old","password":"pw","role":"superuser"}`
	dir := NewAccountDirectory(kv, discardLogger)

	acc, err := dir.FindByCredentials(context.Background(), "old", "pw")
	if err != nil {
		t.Fatalf("FindByCredentials returned error: %v", err)
	}
	if acc.Role != domain.RoleUser {
		t.Fatalf("expected legacy role to read as user, got %s", acc.Role)
	}
}
