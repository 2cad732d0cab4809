package services

import (
	"errors"
	"testing"
)

func TestShoppingListFlow(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "shopper@example.com")
	svc := NewShoppingService()

	bread, err := svc.Add(user.ID, "Whole Wheat Bread", "", 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Add(user.ID, "Greek Yogurt", "", 2); err != nil {
		t.Fatal(err)
	}

	toggled, err := svc.ToggleChecked(user.ID, bread.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !toggled.Checked {
		t.Error("item should be checked after toggle")
	}

	// unchecked items sort before checked ones
	items, err := svc.List(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 || items[0].Checked {
		t.Errorf("list = %+v, want unchecked first", items)
	}

	removed, err := svc.ClearChecked(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Errorf("cleared %d items, want 1", removed)
	}

	items, _ = svc.List(user.ID)
	if len(items) != 1 || items[0].Name != "Greek Yogurt" {
		t.Errorf("remaining = %+v, want only Greek Yogurt", items)
	}
}

func TestShoppingToggleUnknown(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "shopper@example.com")

	if _, err := NewShoppingService().ToggleChecked(user.ID, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
