package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"food-delivery-backend/models"
)

func TestAvailableDriversFilter(t *testing.T) {
	db := setupTestDB(t, "driveravailtest")
	r := setupRouter(db)
	user := seedUser(t, db, "lister@example.com", false)

	free := seedDriver(t, db, nil)
	busy := seedDriver(t, db, nil)
	assert.NoError(t, db.Model(busy).Update("availability_status", models.DriverBusy).Error)
	offline := seedDriver(t, db, nil)
	assert.NoError(t, db.Model(offline).Update("availability_status", models.DriverOffline).Error)

	w := doJSON(t, r, "GET", "/drivers/available", tokenFor(t, user), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), fmt.Sprintf(`"id":%d`, free.ID))
	assert.NotContains(t, w.Body.String(), fmt.Sprintf(`"id":%d`, busy.ID))
	assert.NotContains(t, w.Body.String(), fmt.Sprintf(`"id":%d`, offline.ID))
}

func TestCreateDriverRequiresAdmin(t *testing.T) {
	db := setupTestDB(t, "drivercreatetest")
	r := setupRouter(db)
	user := seedUser(t, db, "wannabe@example.com", false)
	admin := seedUser(t, db, "fleet@example.com", true)

	payload := map[string]interface{}{
		"name":         "Samir",
		"phone":        "0561112222",
		"vehicle_type": "bicycle",
	}
	w := doJSON(t, r, "POST", "/drivers", tokenFor(t, user), payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, "POST", "/drivers", tokenFor(t, admin), payload)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, string(models.DriverAvailable), decodeData(t, w)["availability_status"])
}

func TestDeleteDriverDetachesDeliveries(t *testing.T) {
	db := setupTestDB(t, "driverdeletetest")
	r := setupRouter(db)
	customer := seedUser(t, db, "stranded@example.com", false)
	admin := seedUser(t, db, "hr@example.com", true)
	restaurant, _ := seedRestaurantWithMenu(t, db, 10)
	order := seedOrderFor(t, db, customer, restaurant, 10)
	driver := seedDriver(t, db, nil)

	delivery := models.Delivery{
		OrderID:       order.ID,
		DriverID:      &driver.ID,
		Status:        models.DeliveryAssigned,
		EstimatedTime: time.Now().Add(35 * time.Minute),
	}
	assert.NoError(t, db.Create(&delivery).Error)

	w := doJSON(t, r, "DELETE", fmt.Sprintf("/drivers/%d", driver.ID), tokenFor(t, admin), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// The delivery survives with driver_id nulled, not deleted.
	var got models.Delivery
	assert.NoError(t, db.First(&got, delivery.ID).Error)
	assert.Nil(t, got.DriverID)
	assert.Equal(t, models.DeliveryAssigned, got.Status)
}

func TestUpdateDriverAvailability(t *testing.T) {
	db := setupTestDB(t, "driveravailupdate")
	r := setupRouter(db)
	user := seedUser(t, db, "dispatcher@example.com", false)
	driver := seedDriver(t, db, nil)
	url := fmt.Sprintf("/drivers/%d/availability", driver.ID)

	w := doJSON(t, r, "PATCH", url, tokenFor(t, user), map[string]string{"availability_status": "busy"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "PATCH", url, tokenFor(t, user), map[string]string{"availability_status": "napping"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var got models.Driver
	assert.NoError(t, db.First(&got, driver.ID).Error)
	assert.Equal(t, models.DriverBusy, got.AvailabilityStatus)
}
