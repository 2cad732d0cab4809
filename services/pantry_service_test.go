package services

import (
	"errors"
	"testing"
	"time"
)

func TestPantryCRUD(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "pantry@example.com")
	svc := NewPantryService()

	item, err := svc.Add(user.ID, "Rolled Oats", "12345678", 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if item.Quantity != 1 {
		t.Errorf("default quantity = %d, want 1", item.Quantity)
	}

	updated, err := svc.Update(user.ID, item.ID, "Steel Cut Oats", 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Name != "Steel Cut Oats" || updated.Quantity != 3 {
		t.Errorf("updated = %+v", updated)
	}

	items, err := svc.List(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("list = %d items, want 1", len(items))
	}

	if err := svc.Delete(user.ID, item.ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(user.ID, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete err = %v, want ErrNotFound", err)
	}
}

func TestPantryIsolatedPerUser(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice@example.com")
	bob := createTestUser(t, "bob@example.com")
	svc := NewPantryService()

	item, err := svc.Add(alice.ID, "Honey", "", 1, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Update(bob.ID, item.ID, "Stolen Honey", 1, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-user update err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(bob.ID, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-user delete err = %v, want ErrNotFound", err)
	}

	items, _ := svc.List(bob.ID)
	if len(items) != 0 {
		t.Errorf("bob sees %d items, want 0", len(items))
	}
}

func TestPantryExpiringSoon(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "expiry@example.com")
	svc := NewPantryService()

	soon := time.Now().AddDate(0, 0, 2)
	later := time.Now().AddDate(0, 1, 0)
	if _, err := svc.Add(user.ID, "Milk", "", 1, &soon); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Add(user.ID, "Canned Beans", "", 1, &later); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Add(user.ID, "Salt", "", 1, nil); err != nil {
		t.Fatal(err)
	}

	items, err := svc.ListExpiringSoon(user.ID, 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Name != "Milk" {
		t.Errorf("expiring = %+v, want only Milk", items)
	}
}
