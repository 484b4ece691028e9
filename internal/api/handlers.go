package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/services"
)

var deleted = gin.H{"status": "deleted"}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type waterRequest struct {
	AmountML int    `json:"amount_ml"`
	Date     string `json:"date"`
}

func (r *Router) register(c *gin.Context) {
	var req services.RegisterInput
	if !bindJSON(c, &req) {
		return
	}
	res, err := r.services.Users.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (r *Router) login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := r.services.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (r *Router) getProfile(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

func (r *Router) updateProfile(c *gin.Context) {
	var req services.ProfileUpdate
	if !bindJSON(c, &req) {
		return
	}
	user, err := r.services.Users.UpdateProfile(c.Request.Context(), currentUser(c).ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (r *Router) searchFoods(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	foods, err := r.services.Foods.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (r *Router) createCustomFood(c *gin.Context) {
	var req services.CustomFoodInput
	if !bindJSON(c, &req) {
		return
	}
	item, err := r.services.Foods.CreateCustom(c.Request.Context(), currentUser(c).ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (r *Router) createFoodLog(c *gin.Context) {
	var req services.FoodLogInput
	if !bindJSON(c, &req) {
		return
	}
	log, err := r.services.FoodLogs.Create(c.Request.Context(), currentUser(c).ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func (r *Router) listFoodLogs(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	logs, err := r.services.FoodLogs.List(c.Request.Context(), currentUser(c).ID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (r *Router) recentFoods(c *gin.Context) {
	foods, err := r.services.FoodLogs.Recent(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (r *Router) deleteFoodLog(c *gin.Context) {
	if err := r.services.FoodLogs.Delete(c.Request.Context(), currentUser(c).ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}

func (r *Router) createWeightLog(c *gin.Context) {
	var req services.WeightInput
	if !bindJSON(c, &req) {
		return
	}
	log, err := r.services.Weights.Create(c.Request.Context(), currentUser(c).ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func (r *Router) listWeightLogs(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	logs, err := r.services.Weights.List(c.Request.Context(), currentUser(c).ID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (r *Router) deleteWeightLog(c *gin.Context) {
	if err := r.services.Weights.Delete(c.Request.Context(), currentUser(c).ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}

func (r *Router) addWater(c *gin.Context) {
	var req waterRequest
	if !bindJSON(c, &req) {
		return
	}
	date, err := datekey.ParseOr(req.Date, "")
	if err != nil {
		respondError(c, validation(err))
		return
	}
	view, err := r.services.Water.Add(c.Request.Context(), currentUser(c), req.AmountML, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (r *Router) getWater(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	view, err := r.services.Water.Get(c.Request.Context(), currentUser(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (r *Router) undoWater(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	view, err := r.services.Water.UndoLast(c.Request.Context(), currentUser(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (r *Router) getDashboard(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	dashboard, err := r.services.Dashboard.Daily(c.Request.Context(), currentUser(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (r *Router) getWeeklyStats(c *gin.Context) {
	stats, err := r.services.Stats.Weekly(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
