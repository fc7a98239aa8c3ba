package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"food-delivery-backend/models"
)

func seedOrderFor(t *testing.T, db *gorm.DB, user *models.User, restaurant *models.Restaurant, total float64) *models.Order {
	t.Helper()
	order := models.Order{
		UserID:       user.ID,
		RestaurantID: restaurant.ID,
		Status:       models.OrderOnTheWay,
		TotalAmount:  total,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatal(err)
	}
	return &order
}

func seedDriver(t *testing.T, db *gorm.DB, userID *uint) *models.Driver {
	t.Helper()
	driver := models.Driver{
		Name:               "Karim",
		Phone:              "0559999999",
		VehicleType:        "motorbike",
		AvailabilityStatus: models.DriverAvailable,
		UserID:             userID,
	}
	if err := db.Create(&driver).Error; err != nil {
		t.Fatal(err)
	}
	return &driver
}

func TestDeliveryDeliveredCascadesToOrder(t *testing.T) {
	db := setupTestDB(t, "deliverycascadetest")
	r := setupRouter(db)
	customer := seedUser(t, db, "hungry@example.com", false)
	driverUser := seedUser(t, db, "wheels@example.com", false)
	restaurant, _ := seedRestaurantWithMenu(t, db, 10)
	order := seedOrderFor(t, db, customer, restaurant, 20)
	driver := seedDriver(t, db, &driverUser.ID)

	delivery := models.Delivery{
		OrderID:       order.ID,
		DriverID:      &driver.ID,
		Status:        models.DeliveryOnTheWay,
		EstimatedTime: time.Now().Add(30 * time.Minute),
	}
	assert.NoError(t, db.Create(&delivery).Error)

	url := fmt.Sprintf("/deliveries/%d/update_status", delivery.ID)

	// The customer is neither the assigned driver nor an admin.
	w := doJSON(t, r, "PATCH", url, tokenFor(t, customer), map[string]string{"status": "delivered"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, "PATCH", url, tokenFor(t, driverUser), map[string]string{"status": "delivered"})
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Delivery
	assert.NoError(t, db.First(&got, delivery.ID).Error)
	assert.Equal(t, models.DeliveryDelivered, got.Status)
	assert.NotNil(t, got.ActualTime)

	var parent models.Order
	assert.NoError(t, db.First(&parent, order.ID).Error)
	assert.Equal(t, models.OrderDelivered, parent.Status)
}

func TestDeliveryRejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t, "deliveryunknowntest")
	r := setupRouter(db)
	customer := seedUser(t, db, "waiting@example.com", false)
	admin := seedUser(t, db, "dispatch@example.com", true)
	restaurant, _ := seedRestaurantWithMenu(t, db, 10)
	order := seedOrderFor(t, db, customer, restaurant, 10)

	delivery := models.Delivery{
		OrderID:       order.ID,
		Status:        models.DeliveryAssigned,
		EstimatedTime: time.Now().Add(45 * time.Minute),
	}
	assert.NoError(t, db.Create(&delivery).Error)

	w := doJSON(t, r, "PATCH", fmt.Sprintf("/deliveries/%d/update_status", delivery.ID),
		tokenFor(t, admin), map[string]string{"status": "lost_in_space"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown delivery status")

	// Status and actual_time untouched.
	var got models.Delivery
	assert.NoError(t, db.First(&got, delivery.ID).Error)
	assert.Equal(t, models.DeliveryAssigned, got.Status)
	assert.Nil(t, got.ActualTime)
}

func TestCreateDeliveryOnePerOrder(t *testing.T) {
	db := setupTestDB(t, "deliveryonetest")
	r := setupRouter(db)
	customer := seedUser(t, db, "single@example.com", false)
	restaurant, _ := seedRestaurantWithMenu(t, db, 10)
	order := seedOrderFor(t, db, customer, restaurant, 10)
	token := tokenFor(t, customer)

	payload := map[string]interface{}{
		"order_id":       order.ID,
		"estimated_time": time.Now().Add(40 * time.Minute).Format(time.RFC3339),
	}
	w := doJSON(t, r, "POST", "/deliveries", token, payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/deliveries", token, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already has a delivery")
}

func TestAssignDriverIsAdminOnlyAndLastWriteWins(t *testing.T) {
	db := setupTestDB(t, "deliveryassigntest")
	r := setupRouter(db)
	customer := seedUser(t, db, "assignee@example.com", false)
	admin := seedUser(t, db, "boss@example.com", true)
	restaurant, _ := seedRestaurantWithMenu(t, db, 10)
	order := seedOrderFor(t, db, customer, restaurant, 10)
	first := seedDriver(t, db, nil)
	second := seedDriver(t, db, nil)

	delivery := models.Delivery{
		OrderID:       order.ID,
		Status:        models.DeliveryAssigned,
		EstimatedTime: time.Now().Add(25 * time.Minute),
	}
	assert.NoError(t, db.Create(&delivery).Error)
	url := fmt.Sprintf("/deliveries/%d/assign_driver", delivery.ID)

	w := doJSON(t, r, "PATCH", url, tokenFor(t, customer), map[string]uint{"driver_id": first.ID})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, "PATCH", url, tokenFor(t, admin), map[string]uint{"driver_id": first.ID})
	assert.Equal(t, http.StatusOK, w.Code)

	// Reassignment is a plain overwrite; no conflict detection.
	w = doJSON(t, r, "PATCH", url, tokenFor(t, admin), map[string]uint{"driver_id": second.ID})
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Delivery
	assert.NoError(t, db.First(&got, delivery.ID).Error)
	assert.Equal(t, second.ID, *got.DriverID)
}

func TestDeliveryScoping(t *testing.T) {
	db := setupTestDB(t, "deliveryscopetest")
	r := setupRouter(db)
	customer := seedUser(t, db, "mine@example.com", false)
	other := seedUser(t, db, "other@example.com", false)
	driverUser := seedUser(t, db, "courier@example.com", false)
	restaurant, _ := seedRestaurantWithMenu(t, db, 10)
	order := seedOrderFor(t, db, customer, restaurant, 10)
	driver := seedDriver(t, db, &driverUser.ID)

	delivery := models.Delivery{
		OrderID:       order.ID,
		DriverID:      &driver.ID,
		Status:        models.DeliveryAssigned,
		EstimatedTime: time.Now().Add(20 * time.Minute),
	}
	assert.NoError(t, db.Create(&delivery).Error)
	url := fmt.Sprintf("/deliveries/%d", delivery.ID)

	// The order's owner and the assigned driver can see it.
	w := doJSON(t, r, "GET", url, tokenFor(t, customer), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, "GET", url, tokenFor(t, driverUser), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// An unrelated user cannot.
	w = doJSON(t, r, "GET", url, tokenFor(t, other), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
