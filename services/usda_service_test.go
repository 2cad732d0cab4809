package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newFakeUSDA(t *testing.T, handler http.HandlerFunc) *USDAService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("USDA_BASE_URL", srv.URL)
	t.Setenv("USDA_API_KEY", "test-key")
	return NewUSDAService()
}

func TestSearchFoods(t *testing.T) {
	svc := newFakeUSDA(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fdc/v1/foods/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("query") != "whole grain crackers" {
			t.Errorf("query = %q", q.Get("query"))
		}
		if q.Get("api_key") != "test-key" {
			t.Errorf("api_key = %q", q.Get("api_key"))
		}
		fmt.Fprint(w, `{
			"foods": [{
				"fdcId": 123456,
				"description": "Crackers, whole grain",
				"brandOwner": "Grain Co",
				"foodNutrients": [
					{"nutrientName": "Energy", "value": 420},
					{"nutrientName": "Protein", "value": 9.5},
					{"nutrientName": "Sugars, total", "value": 2},
					{"nutrientName": "Sodium, Na", "value": 540}
				]
			}]
		}`)
	})

	foods, err := svc.SearchFoods("whole grain crackers", 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(foods) != 1 {
		t.Fatalf("got %d foods, want 1", len(foods))
	}

	p := foods[0].profile()
	if p.Calories != 420 || p.Protein != 9.5 || p.Sugar != 2 || p.Sodium != 540 {
		t.Errorf("profile = %+v", p)
	}
}

func TestSearchFoodsDetailShape(t *testing.T) {
	svc := newFakeUSDA(t, func(w http.ResponseWriter, r *http.Request) {
		// detail responses nest the name and use "amount"
		fmt.Fprint(w, `{
			"foods": [{
				"fdcId": 7,
				"description": "Oat cereal",
				"foodNutrients": [
					{"nutrient": {"name": "Protein"}, "amount": 11}
				]
			}]
		}`)
	})

	foods, err := svc.SearchFoods("oats", 0)
	if err != nil {
		t.Fatal(err)
	}
	if p := foods[0].profile(); p.Protein != 11 {
		t.Errorf("protein = %v, want 11", p.Protein)
	}
}

func TestSearchFoodsUpstreamError(t *testing.T) {
	svc := newFakeUSDA(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "over rate limit", http.StatusTooManyRequests)
	})

	if _, err := svc.SearchFoods("anything", 5); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewUSDAServiceDefaultKey(t *testing.T) {
	t.Setenv("USDA_API_KEY", "")
	t.Setenv("USDA_BASE_URL", "")
	svc := NewUSDAService()
	if svc.apiKey != "DEMO_KEY" {
		t.Errorf("apiKey = %q, want DEMO_KEY fallback", svc.apiKey)
	}
}
