package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"food-delivery-backend/models"
)

func TestRestaurantMenusShowOnlyAvailableItems(t *testing.T) {
	db := setupTestDB(t, "restaurantmenustest")
	r := setupRouter(db)
	restaurant, available := seedRestaurantWithMenu(t, db, 10)

	hidden := models.Menu{
		RestaurantID:       restaurant.ID,
		ItemName:           "Seasonal Special",
		Price:              14,
		AvailabilityStatus: models.MenuOutOfStock,
	}
	assert.NoError(t, db.Create(&hidden).Error)

	// Browsing needs no token.
	w := doJSON(t, r, "GET", fmt.Sprintf("/restaurants/%d/menus", restaurant.ID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), available.ItemName)
	assert.NotContains(t, w.Body.String(), hidden.ItemName)
}

func TestCreateRestaurantAndMenuRequireAdmin(t *testing.T) {
	db := setupTestDB(t, "restaurantcreatetest")
	r := setupRouter(db)
	user := seedUser(t, db, "walkin@example.com", false)
	admin := seedUser(t, db, "owner@example.com", true)

	restaurantPayload := map[string]interface{}{
		"name":         "Falafel Corner",
		"address":      "5 Souk Rd",
		"cuisine_type": "levantine",
		"rating":       4.5,
	}
	w := doJSON(t, r, "POST", "/restaurants", tokenFor(t, user), restaurantPayload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, "POST", "/restaurants", tokenFor(t, admin), restaurantPayload)
	assert.Equal(t, http.StatusCreated, w.Code)
	restaurantID := uint(decodeData(t, w)["id"].(float64))

	w = doJSON(t, r, "POST", "/menus", tokenFor(t, admin), map[string]interface{}{
		"restaurant_id": restaurantID,
		"item_name":     "Falafel Wrap",
		"price":         6.50,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, string(models.MenuAvailable), decodeData(t, w)["availability_status"])

	// Unknown restaurant is a bad foreign key, not a server error.
	w = doJSON(t, r, "POST", "/menus", tokenFor(t, admin), map[string]interface{}{
		"restaurant_id": 9999,
		"item_name":     "Ghost Dish",
		"price":         1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReviewValidatesOwnershipAndRating(t *testing.T) {
	db := setupTestDB(t, "reviewtest")
	r := setupRouter(db)
	customer := seedUser(t, db, "critic@example.com", false)
	other := seedUser(t, db, "impostor@example.com", false)
	restaurant, _ := seedRestaurantWithMenu(t, db, 10)
	order := seedOrderFor(t, db, customer, restaurant, 10)

	payload := map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"order_id":      order.ID,
		"rating":        5,
		"comment":       "great shawarma",
	}

	// Reviewing someone else's order is rejected.
	w := doJSON(t, r, "POST", "/reviews", tokenFor(t, other), payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Rating outside 1..5 is rejected by binding.
	bad := map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"order_id":      order.ID,
		"rating":        6,
	}
	w = doJSON(t, r, "POST", "/reviews", tokenFor(t, customer), bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/reviews", tokenFor(t, customer), payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	// The list is scoped: the impostor sees nothing.
	w = doJSON(t, r, "GET", "/reviews", tokenFor(t, other), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "great shawarma")
}
