package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"food-delivery-backend/config"
	"food-delivery-backend/models"
	"food-delivery-backend/router"
	"food-delivery-backend/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
}

// setupTestDB opens a private in-memory database and migrates the full
// schema. Each test gets its own name so state never leaks between tests.
func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := config.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	return router.SetupRouter(db)
}

func seedUser(t *testing.T, db *gorm.DB, email string, admin bool) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	user := models.User{
		Name:         "Test User",
		Email:        email,
		Phone:        "0500000000",
		PasswordHash: string(hashed),
		IsActive:     true,
		IsAdmin:      admin,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	return &user
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	access, _, err := utils.GenerateTokenPair(user)
	if err != nil {
		t.Fatal(err)
	}
	return access
}

func seedRestaurantWithMenu(t *testing.T, db *gorm.DB, price float64) (*models.Restaurant, *models.Menu) {
	t.Helper()
	restaurant := models.Restaurant{Name: "Shawarma Palace", Address: "1 Main St", CuisineType: "middle eastern"}
	if err := db.Create(&restaurant).Error; err != nil {
		t.Fatal(err)
	}
	menu := models.Menu{
		RestaurantID:       restaurant.ID,
		ItemName:           "Chicken Shawarma",
		Price:              price,
		AvailabilityStatus: models.MenuAvailable,
	}
	if err := db.Create(&menu).Error; err != nil {
		t.Fatal(err)
	}
	return &restaurant, &menu
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, r *gin.Engine, method, url, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	data, _ := resp["data"].(map[string]interface{})
	return data
}
