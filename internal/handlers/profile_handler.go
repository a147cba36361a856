package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"verde/internal/models"
	"verde/internal/services"
)

// ProfileHandler handles the local user profile, login and score requests.
type ProfileHandler struct {
	profileService services.ProfileServicer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService services.ProfileServicer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// LoginRequest represents the request payload for a local login.
type LoginRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Email string `json:"email" binding:"omitempty,email,max=255"`
}

// UpdateProfileRequest represents the request payload for updating the profile.
type UpdateProfileRequest struct {
	Name   *string      `json:"name" binding:"omitempty,min=1,max=100"`
	Email  *string      `json:"email" binding:"omitempty,email,max=255"`
	Avatar *string      `json:"avatar" binding:"omitempty,max=500"`
	Plan   *models.Plan `json:"plan" binding:"omitempty,plan"`
}

// Login handles the local login. There are no credentials; the name and
// email only set the display identity.
// @Summary     Log in
// @Description Set the local display identity, creating a basic profile if none exists
// @Tags        profile
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Identity"
// @Success     200 {object} UserResponse "Profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *ProfileHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	profile, err := h.profileService.Login(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}

// Logout handles clearing the local profile. Ledger data is kept.
// @Summary     Log out
// @Description Clear the local profile
// @Tags        profile
// @Produce     json
// @Success     200 {object} MessageResponse "Logged out"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/logout [post]
func (h *ProfileHandler) Logout(c *gin.Context) {
	if err := h.profileService.Logout(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetProfile handles retrieving the profile.
// @Summary     Get profile
// @Description Get the logged-in profile with score and achievements
// @Tags        profile
// @Produce     json
// @Success     200 {object} UserResponse "Profile"
// @Failure     404 {object} ErrorResponse "No user is logged in"
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}

// UpdateProfile handles updating the profile.
// @Summary     Update profile
// @Description Update name, email, avatar or plan
// @Tags        profile
// @Accept      json
// @Produce     json
// @Param       request body UpdateProfileRequest true "Updated profile"
// @Success     200 {object} UserResponse "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "No user is logged in"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	if _, err := h.profileService.GetProfile(); err != nil {
		respondWithError(c, err)
		return
	}

	patch := models.ProfilePatch{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
		Plan:   req.Plan,
	}
	if err := h.profileService.UpdateUserProfile(c.Request.Context(), patch); err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profileService.GetProfile()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}

// GetScore handles explaining the current score.
// @Summary     Get score breakdown
// @Description Show how each signal contributes to the financial score
// @Tags        profile
// @Produce     json
// @Success     200 {object} ScoreResponse "Score breakdown"
// @Router      /profile/score [get]
func (h *ProfileHandler) GetScore(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"score": h.profileService.GetScore()})
}

// RecomputeScore handles re-evaluating the score and achievements.
// @Summary     Recompute score
// @Description Re-evaluate the stored score and unlock any due achievements
// @Tags        profile
// @Produce     json
// @Success     200 {object} UserResponse "Profile"
// @Failure     404 {object} ErrorResponse "No user is logged in"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile/score/recompute [post]
func (h *ProfileHandler) RecomputeScore(c *gin.Context) {
	if _, err := h.profileService.GetProfile(); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.profileService.RecomputeScore(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profileService.GetProfile()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}
