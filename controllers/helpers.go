package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"food-delivery-backend/services"
	"food-delivery-backend/utils"
)

// currentActor builds the workflow actor from what AuthMiddleware put in
// the context.
func currentActor(c *gin.Context) services.Actor {
	idVal, _ := c.Get("user_id")
	id, _ := idVal.(uint)
	return services.Actor{
		ID:      id,
		IsStaff: c.GetBool("is_staff"),
		IsAdmin: c.GetBool("is_admin"),
	}
}

func respondServiceError(c *gin.Context, err error) {
	utils.RespondError(c, services.HTTPStatus(err), err)
}

func idParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return uint(id), nil
}
