package fooddata

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// openFoodFactsResponse mirrors the v0 product endpoint. Nutriment values
// arrive as numbers or strings depending on the product, hence interface{}.
type openFoodFactsResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName string `json:"product_name"`
		Nutriments  struct {
			EnergyKcal100g interface{} `json:"energy-kcal_100g"`
			Proteins100g   interface{} `json:"proteins_100g"`
			Carbs100g      interface{} `json:"carbohydrates_100g"`
			Fat100g        interface{} `json:"fat_100g"`
			Fiber100g      interface{} `json:"fiber_100g"`
		} `json:"nutriments"`
	} `json:"product"`
}

// LookupBarcode resolves a UPC/EAN code. FoodData Central's branded dataset
// is tried first; codes are compared with leading zeros stripped because the
// two sides disagree about zero padding. Open Food Facts is the fallback.
func (client *Client) LookupBarcode(code string) (*FoodResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrNotFound
	}

	foods, err := client.searchUSDA(code, []string{usdaDataTypeBranded})
	if err != nil {
		return nil, err
	}
	for _, food := range foods {
		if barcodesMatch(food.GtinUpc, code) {
			result := client.buildUSDAResult(food)
			return &result, nil
		}
	}

	return client.lookupOpenFoodFacts(code)
}

func barcodesMatch(reported string, requested string) bool {
	reported = strings.TrimLeft(strings.TrimSpace(reported), "0")
	requested = strings.TrimLeft(requested, "0")
	return reported != "" && reported == requested
}

func (client *Client) lookupOpenFoodFacts(code string) (*FoodResult, error) {
	response, err := client.httpClient.Get(client.productURL + "/" + code + ".json")
	if err != nil {
		return nil, fmt.Errorf("open food facts request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open food facts failed with status %d", response.StatusCode)
	}

	payload := openFoodFactsResponse{}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode open food facts response: %w", err)
	}
	if payload.Status != 1 {
		return nil, ErrNotFound
	}

	nutriments := payload.Product.Nutriments
	return &FoodResult{
		Name:            payload.Product.ProductName,
		Source:          SourceOpenFoodFacts,
		Barcode:         code,
		CaloriesPer100g: nutrimentValue(nutriments.EnergyKcal100g),
		ProteinPer100g:  nutrimentValue(nutriments.Proteins100g),
		CarbsPer100g:    nutrimentValue(nutriments.Carbs100g),
		FatPer100g:      nutrimentValue(nutriments.Fat100g),
		FiberPer100g:    nutrimentValue(nutriments.Fiber100g),
	}, nil
}

func nutrimentValue(raw interface{}) float64 {
	switch value := raw.(type) {
	case float64:
		return value
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0.0
		}
		return parsed
	default:
		return 0.0
	}
}
