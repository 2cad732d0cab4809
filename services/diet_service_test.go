package services

import (
	"errors"
	"testing"
	"time"
)

func TestDietPlanCRUD(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "diet@example.com")
	svc := NewDietService()

	plan, err := svc.CreatePlan(user.ID, "Cutting Week", nil, 1800, []DietMealRequest{
		{Name: "Oatmeal", Calories: 350, Protein: 12, Carbs: 60, Fat: 6},
		{Name: "Chicken Salad", Calories: 450, Protein: 40, Carbs: 10, Fat: 20},
	})
	if err != nil {
		t.Fatal(err)
	}
	if plan.CaloriesTarget != 1800 || len(plan.Meals) != 2 {
		t.Errorf("plan = %+v", plan)
	}

	// update replaces the meal list wholesale
	updated, err := svc.UpdatePlan(user.ID, plan.ID, "Cutting Week v2", nil, 1700, []DietMealRequest{
		{Name: "Eggs and Toast", Calories: 400},
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Title != "Cutting Week v2" || len(updated.Meals) != 1 {
		t.Errorf("updated = %+v", updated)
	}
	if updated.Meals[0].Name != "Eggs and Toast" {
		t.Errorf("meals = %+v", updated.Meals)
	}

	if err := svc.DeletePlan(user.ID, plan.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetPlan(user.ID, plan.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("err after delete = %v, want ErrNotFound", err)
	}
}

func TestDietPlanDefaultTarget(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "diet@example.com")

	plan, err := NewDietService().CreatePlan(user.ID, "Defaults", nil, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if plan.CaloriesTarget != 2000 {
		t.Errorf("default target = %d, want 2000", plan.CaloriesTarget)
	}
}

func TestAddMealTodayCreatesPlanOnce(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "diet@example.com")
	svc := NewDietService()

	first, err := svc.AddMealToday(user.ID, DietMealRequest{Name: "Banana", Calories: 100})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.AddMealToday(user.ID, DietMealRequest{Name: "Protein Shake", Calories: 200})
	if err != nil {
		t.Fatal(err)
	}

	if second.ID != first.ID {
		t.Errorf("second meal created a new plan: %d vs %d", second.ID, first.ID)
	}
	if len(second.Meals) != 2 {
		t.Errorf("today's plan has %d meals, want 2", len(second.Meals))
	}

	plans, _ := svc.ListPlans(user.ID)
	if len(plans) != 1 {
		t.Errorf("user has %d plans, want 1", len(plans))
	}
}

func TestStartOfDayUsesLocalCalendarDay(t *testing.T) {
	t.Parallel()

	// 00:30 on Aug 29 in UTC+5:30; a 24h truncation would land on Aug 28
	zone := time.FixedZone("UTC+5:30", 5*3600+30*60)
	at := time.Date(2026, 8, 29, 0, 30, 0, 0, zone)

	got := startOfDay(at)
	want := time.Date(2026, 8, 29, 0, 0, 0, 0, zone)
	if !got.Equal(want) {
		t.Errorf("startOfDay = %v, want %v", got, want)
	}
	if got.Day() != at.Day() {
		t.Errorf("day boundary shifted from %d to %d", at.Day(), got.Day())
	}
}

func TestAddMealTodayPlanDateIsLocalMidnight(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "diet@example.com")

	plan, err := NewDietService().AddMealToday(user.ID, DietMealRequest{Name: "Toast", Calories: 150})
	if err != nil {
		t.Fatal(err)
	}
	if plan.Date == nil {
		t.Fatal("plan date not set")
	}
	if !plan.Date.Equal(startOfDay(time.Now())) {
		t.Errorf("plan date = %v, want today's local midnight", plan.Date)
	}
}

func TestDietPlanCrossUser(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice@example.com")
	bob := createTestUser(t, "bob@example.com")
	svc := NewDietService()

	plan, err := svc.CreatePlan(alice.ID, "Alice's Plan", nil, 2000, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.GetPlan(bob.ID, plan.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-user get err = %v, want ErrNotFound", err)
	}
	if err := svc.DeletePlan(bob.ID, plan.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-user delete err = %v, want ErrNotFound", err)
	}
}
