package fooddata

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fuelhq/fuel/internal/services"
)

// Nutrient ids in USDA FoodData Central.
const (
	nutrientEnergy  = 1008
	nutrientProtein = 1003
	nutrientFat     = 1004
	nutrientCarbs   = 1005
	nutrientFiber   = 1079
)

const usdaDataTypeBranded = "Branded"

type usdaFoodNutrient struct {
	NutrientID int     `json:"nutrientId"`
	Value      float64 `json:"value"`
}

type usdaFood struct {
	FdcID           int64              `json:"fdcId"`
	Description     string             `json:"description"`
	DataType        string             `json:"dataType"`
	GtinUpc         string             `json:"gtinUpc"`
	ServingSize     float64            `json:"servingSize"`
	ServingSizeUnit string             `json:"servingSizeUnit"`
	FoodNutrients   []usdaFoodNutrient `json:"foodNutrients"`
}

type usdaSearchResponse struct {
	Foods []usdaFood `json:"foods"`
}

// Search queries FoodData Central by name across the generic and branded
// datasets and normalizes every hit to per-100g values.
func (client *Client) Search(query string) ([]FoodResult, error) {
	foods, err := client.searchUSDA(query, []string{"Foundation", "SR Legacy", usdaDataTypeBranded})
	if err != nil {
		return nil, err
	}

	results := make([]FoodResult, 0, len(foods))
	for _, food := range foods {
		results = append(results, client.buildUSDAResult(food))
	}
	return results, nil
}

func (client *Client) searchUSDA(query string, dataTypes []string) ([]usdaFood, error) {
	params := url.Values{}
	params.Set("query", sanitizeQuery(query))
	params.Set("api_key", client.apiKey)
	params.Set("pageSize", "20")
	for _, dataType := range dataTypes {
		params.Add("dataType", dataType)
	}

	response, err := client.httpClient.Get(client.searchURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("usda search request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usda search failed with status %d", response.StatusCode)
	}

	payload := usdaSearchResponse{}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode usda search response: %w", err)
	}
	return payload.Foods, nil
}

func (client *Client) buildUSDAResult(food usdaFood) FoodResult {
	branded := food.DataType == usdaDataTypeBranded
	return FoodResult{
		FdcID:           food.FdcID,
		Name:            titleCase(food.Description),
		Source:          SourceUSDA,
		Barcode:         food.GtinUpc,
		CaloriesPer100g: normalizedNutrient(food, nutrientEnergy, branded),
		ProteinPer100g:  normalizedNutrient(food, nutrientProtein, branded),
		CarbsPer100g:    normalizedNutrient(food, nutrientCarbs, branded),
		FatPer100g:      normalizedNutrient(food, nutrientFat, branded),
		FiberPer100g:    normalizedNutrient(food, nutrientFiber, branded),
	}
}

func normalizedNutrient(food usdaFood, nutrientID int, branded bool) float64 {
	for _, nutrient := range food.FoodNutrients {
		if nutrient.NutrientID == nutrientID {
			return services.PerHundredGrams(nutrient.Value, food.ServingSize, branded)
		}
	}
	return 0.0
}

// sanitizeQuery strips quote characters so callers cannot smuggle FoodData
// Central query syntax through the search box.
func sanitizeQuery(query string) string {
	return strings.NewReplacer(`"`, "", `'`, "").Replace(strings.TrimSpace(query))
}

func titleCase(value string) string {
	words := strings.Fields(strings.ToLower(value))
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		if first == utf8.RuneError {
			continue
		}
		words[i] = string(unicode.ToUpper(first)) + word[size:]
	}
	return strings.Join(words, " ")
}
