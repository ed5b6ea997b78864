package api

import (
	"fmt"
	"net/http"
	"testing"
)

func TestIngredientCatalogCRUD(t *testing.T) {
	ta := newTestApp(t)

	response := ta.request(t, http.MethodPost, "/ingredients/", ingredientInput{
		Name:            ptr("Rolled oats"),
		CaloriesPer100g: ptr(379),
		ProteinPer100g:  ptr(13.2),
		CarbsPer100g:    ptr(67.7),
		FatPer100g:      ptr(6.5),
		FiberPer100g:    ptr(10.1),
		Source:          ptr("usda"),
	}, testBearerToken)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", response.StatusCode, readAPIError(t, response.Body))
	}
	created := decodeResponse[ingredientResponse](t, response)
	if created.CaloriesPer100g != 379 || created.Source != "usda" {
		t.Fatalf("unexpected ingredient: %+v", created)
	}

	// The catalog is global, so another authenticated user sees and edits it.
	otherToken, _ := ta.secondUser()
	response = ta.request(t, http.MethodGet, "/ingredients/", nil, otherToken)
	listed := decodeResponse[[]ingredientResponse](t, response)
	if len(listed) != 1 {
		t.Fatalf("expected 1 catalog entry, got %d", len(listed))
	}

	response = ta.request(t, http.MethodPatch, fmt.Sprintf("/ingredients/%d", created.ID), ingredientInput{}, otherToken)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty patch, got %d", response.StatusCode)
	}

	response = ta.request(t, http.MethodPatch, fmt.Sprintf("/ingredients/%d", created.ID), ingredientInput{
		CaloriesPer100g: ptr(380),
	}, otherToken)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	updated := decodeResponse[ingredientResponse](t, response)
	if updated.CaloriesPer100g != 380 || updated.Name != "Rolled oats" {
		t.Fatalf("unexpected ingredient after patch: %+v", updated)
	}

	response = ta.request(t, http.MethodDelete, fmt.Sprintf("/ingredients/%d", created.ID), nil, testBearerToken)
	if response.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", response.StatusCode)
	}
	response = ta.request(t, http.MethodDelete, fmt.Sprintf("/ingredients/%d", created.ID), nil, testBearerToken)
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", response.StatusCode)
	}
}

func TestCreateIngredientValidation(t *testing.T) {
	ta := newTestApp(t)

	response := ta.request(t, http.MethodPost, "/ingredients/", ingredientInput{}, testBearerToken)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", response.StatusCode)
	}

	response = ta.request(t, http.MethodPost, "/ingredients/", ingredientInput{
		Name:            ptr("Broken"),
		CaloriesPer100g: ptr(-5),
	}, testBearerToken)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative nutrients, got %d", response.StatusCode)
	}
}
