package handler

import (
	"github.com/blues/fms/internal/model"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	WalletAddress   string         `json:"wallet_address" binding:"required"`
	Username        *string        `json:"username"`
	Email           *string        `json:"email"`
	Role            model.UserRole `json:"role" binding:"required,oneof=creator investor"`
	Bio             string         `json:"bio"`
	ProfileImageURL string         `json:"profile_image_url"`
}

// LoginRequest 登录请求，仅凭钱包地址，不校验钱包签名
type LoginRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required"`
	Signature     string `json:"signature"`
}

// AuthResponse 注册/登录响应
type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        *model.User `json:"user"`
}

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	TargetRevenue float64 `json:"target_revenue"`
	ImageURL      string  `json:"image_url"`
}

// CreateInvestmentRequest 创建投资请求
type CreateInvestmentRequest struct {
	ProjectID       uint    `json:"project_id" binding:"required"`
	Amount          float64 `json:"amount"`
	NftTokenID      int64   `json:"nft_token_id"`
	TransactionHash *string `json:"transaction_hash"`
}
