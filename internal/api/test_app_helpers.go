package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/fuelhq/fuel/internal/auth"
	"github.com/fuelhq/fuel/internal/db"
	"github.com/fuelhq/fuel/internal/fooddata"
)

const testBearerToken = "test-token"

// stubVerifier maps bearer tokens to identities without real JWT parsing.
type stubVerifier struct {
	identities map[string]auth.Identity
}

func (stub *stubVerifier) Verify(rawToken string) (auth.Identity, error) {
	identity, ok := stub.identities[rawToken]
	if !ok {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	return identity, nil
}

type stubFoodSource struct {
	searchResults []fooddata.FoodResult
	searchErr     error
	barcodeResult *fooddata.FoodResult
	barcodeErr    error
}

func (stub *stubFoodSource) Search(query string) ([]fooddata.FoodResult, error) {
	return stub.searchResults, stub.searchErr
}

func (stub *stubFoodSource) LookupBarcode(code string) (*fooddata.FoodResult, error) {
	return stub.barcodeResult, stub.barcodeErr
}

type testApp struct {
	app      *fiber.App
	repos    *db.Repositories
	foods    *stubFoodSource
	userID   string
	verifier *stubVerifier
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "fuel-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	userID := uuid.NewString()
	verifier := &stubVerifier{identities: map[string]auth.Identity{
		testBearerToken: {UserID: userID, Email: "eater@example.com"},
	}}
	foods := &stubFoodSource{}
	repos := db.NewRepositories(database)

	handler := NewHandler(repos, verifier, foods, time.UTC)
	app := fiber.New()
	RegisterRoutes(app, handler)

	return &testApp{app: app, repos: repos, foods: foods, userID: userID, verifier: verifier}
}

// secondUser registers another identity and returns its token and user id.
func (ta *testApp) secondUser() (string, string) {
	token := "other-token"
	userID := uuid.NewString()
	ta.verifier.identities[token] = auth.Identity{UserID: userID, Email: "other@example.com"}
	return token, userID
}

func (ta *testApp) request(t *testing.T, method string, path string, body any, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := ta.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeResponse[T any](t *testing.T, response *http.Response) T {
	t.Helper()

	var payload T
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload
}

func ptr[T any](value T) *T {
	return &value
}

func mealPath(mealID uint) string {
	return fmt.Sprintf("/meals/%d", mealID)
}

func mealPortionPath(mealID uint) string {
	return fmt.Sprintf("/meals/%d/portion", mealID)
}

func recipePath(recipeID uint) string {
	return fmt.Sprintf("/recipes/%d", recipeID)
}

func recipeIngredientsPath(recipeID uint) string {
	return fmt.Sprintf("/recipes/%d/ingredients", recipeID)
}

func recipeIngredientPath(recipeID uint, ingredientID uint) string {
	return fmt.Sprintf("/recipes/%d/ingredients/%d", recipeID, ingredientID)
}

func recipeLogPath(recipeID uint) string {
	return fmt.Sprintf("/recipes/%d/log", recipeID)
}

func restoreFromMealPath(recipeID uint, mealID uint) string {
	return fmt.Sprintf("/recipes/%d/restore-from-meal/%d", recipeID, mealID)
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload["error"]
}
