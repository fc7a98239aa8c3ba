package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food-delivery-backend/models"
	"food-delivery-backend/utils"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// GetAllReviews lists the caller's own reviews; admins see everything.
func (rc *ReviewController) GetAllReviews(c *gin.Context) {
	actor := currentActor(c)

	var reviews []models.Review
	q := rc.DB.Order("created_at DESC")
	if !actor.IsAdmin {
		q = q.Where("user_id = ?", actor.ID)
	}
	if err := q.Find(&reviews).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reviews", reviews)
}

// CreateReview accepts a rating for an order the caller placed at the
// named restaurant.
func (rc *ReviewController) CreateReview(c *gin.Context) {
	actor := currentActor(c)

	var req struct {
		RestaurantID uint   `json:"restaurant_id" binding:"required"`
		OrderID      uint   `json:"order_id" binding:"required"`
		Rating       int    `json:"rating" binding:"required,min=1,max=5"`
		Comment      string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := rc.DB.First(&order, req.OrderID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("order not found"))
		return
	}
	if order.UserID != actor.ID {
		utils.RespondError(c, http.StatusForbidden, errors.New("you do not own this order"))
		return
	}
	if order.RestaurantID != req.RestaurantID {
		utils.RespondError(c, http.StatusBadRequest, errors.New("order was not placed at this restaurant"))
		return
	}

	review := models.Review{
		UserID:       actor.ID,
		RestaurantID: req.RestaurantID,
		OrderID:      req.OrderID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := rc.DB.Create(&review).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Review created", review)
}
