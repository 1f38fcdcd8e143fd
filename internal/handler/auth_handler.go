package handler

import (
	"net/http"
	"strings"

	"github.com/blues/fms/internal/auth"
	"github.com/blues/fms/internal/logic"
	"github.com/blues/fms/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler 注册登录处理器
type AuthHandler struct {
	authLogic    *logic.AuthLogic
	userLogic    *logic.UserLogic
	tokenManager *auth.TokenManager
}

// NewAuthHandler 创建注册登录处理器
func NewAuthHandler(db *gorm.DB, tokenManager *auth.TokenManager) *AuthHandler {
	return &AuthHandler{
		authLogic:    logic.NewAuthLogic(db, tokenManager),
		userLogic:    logic.NewUserLogic(db),
		tokenManager: tokenManager,
	}
}

// Register 注册新用户
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数: " + err.Error()})
		return
	}

	user := &model.User{
		WalletAddress:   req.WalletAddress,
		Username:        req.Username,
		Email:           req.Email,
		Role:            req.Role,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
	}

	token, err := h.authLogic.Register(user)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

// Login 登录并签发新令牌
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数: " + err.Error()})
		return
	}

	token, user, err := h.authLogic.Login(req.WalletAddress)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

// Me 按Authorization头中的令牌返回当前用户
func (h *AuthHandler) Me(c *gin.Context) {
	header := c.GetHeader("Authorization")
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "缺少访问令牌"})
		return
	}

	userID, err := h.tokenManager.Parse(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userLogic.GetUserByID(userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}
