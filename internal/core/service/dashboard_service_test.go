package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/repairworks/backoffice/internal/core/domain"
)

func newDashboardFixture(t *testing.T) (*DashboardService, *stubOrders) {
	t.Helper()
	orders := newStubOrders()
	seed := []domain.Order{
		{UserID: "u-1", AssignedUserID: "u-2", Cost: 50000},
		{UserID: "u-2", AssignedUserID: "u-3", Cost: 51500},
		{UserID: "u-3", AssignedUserID: "u-1", Cost: 103000},
	}
	for i := range seed {
		if err := orders.Insert(context.Background(), &seed[i]); err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	users := newStubUsers(
		domain.User{ID: "u-admin", Login: "admin", IsAdmin: true},
		domain.User{ID: "u-1", Login: "user1"},
		domain.User{ID: "u-2", Login: "user2"},
	)
	svc := NewDashboardService(
		newStubClients(domain.Client{ID: "c-1", Name: "Ivan Ivanov"}),
		newStubContractors(domain.Contractor{ID: "k-1", Name: "BuildMaster LLC"}),
		newStubObjects(domain.WorkObject{ID: "o-1", Type: "apartment", Area: 50}),
		newStubMaterials(domain.Material{ID: "m-1", Name: "Paint", Cost: 1500}),
		users,
		orders,
		zerolog.Nop(),
	)
	return svc, orders
}

func TestDashboardService_AdminSeesAllOrders(t *testing.T) {
	svc, _ := newDashboardFixture(t)

	admin := domain.Principal{ID: "u-admin", Login: "admin", IsAdmin: true}
	data, err := svc.Fetch(context.Background(), admin)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(data.Orders) != 3 {
		t.Fatalf("admin must see all orders, got %d", len(data.Orders))
	}
	for _, o := range data.Orders {
		if !o.VisibleTo(admin) {
			t.Fatalf("order %s must be visible to an admin", o.ID)
		}
	}
}

func TestDashboardService_NonAdminSeesOwnAndAssigned(t *testing.T) {
	svc, orders := newDashboardFixture(t)

	principal := domain.Principal{ID: "u-1", Login: "user1"}
	data, err := svc.Fetch(context.Background(), principal)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(data.Orders) != 2 {
		t.Fatalf("expected 2 visible orders, got %d", len(data.Orders))
	}
	for _, o := range data.Orders {
		if !o.VisibleTo(principal) {
			t.Fatalf("order %s not visible to u-1", o.ID)
		}
	}

	// The scoped listing must agree with the visibility rule over the full
	// set: nothing visible is withheld.
	all, err := orders.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	visible := 0
	for _, o := range all {
		if o.VisibleTo(principal) {
			visible++
		}
	}
	if visible != len(data.Orders) {
		t.Fatalf("scoped listing returned %d orders, visibility rule admits %d", len(data.Orders), visible)
	}
}

func TestDashboardService_UsersExcludeAdmins(t *testing.T) {
	svc, _ := newDashboardFixture(t)

	data, err := svc.Fetch(context.Background(), domain.Principal{ID: "u-admin", IsAdmin: true})
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(data.Users) != 2 {
		t.Fatalf("expected 2 non-admin users, got %d", len(data.Users))
	}
	for _, u := range data.Users {
		if u.IsAdmin {
			t.Fatalf("admin leaked into assignee list: %+v", u)
		}
	}
}

func TestDashboardService_IncludesCatalogs(t *testing.T) {
	svc, _ := newDashboardFixture(t)

	data, err := svc.Fetch(context.Background(), domain.Principal{ID: "u-1"})
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(data.Clients) != 1 || len(data.Contractors) != 1 || len(data.Materials) != 1 || len(data.Objects) != 1 {
		t.Fatalf("catalog collections missing from payload: %+v", data)
	}
	if data.User.ID != "u-1" {
		t.Fatalf("payload must echo the requesting principal, got %+v", data.User)
	}
}
