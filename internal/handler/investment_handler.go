package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/fms/internal/logic"
	"github.com/blues/fms/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InvestmentHandler 投资记录处理器
type InvestmentHandler struct {
	investmentLogic *logic.InvestmentLogic
}

// NewInvestmentHandler 创建投资记录处理器
func NewInvestmentHandler(db *gorm.DB) *InvestmentHandler {
	return &InvestmentHandler{
		investmentLogic: logic.NewInvestmentLogic(db),
	}
}

// CreateInvestment 创建投资记录
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	investorID, err := strconv.ParseUint(c.Query("investor_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的投资人ID"})
		return
	}

	var req CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数: " + err.Error()})
		return
	}

	investment := &model.Investment{
		ProjectID:       req.ProjectID,
		Amount:          req.Amount,
		NftTokenID:      req.NftTokenID,
		TransactionHash: req.TransactionHash,
	}

	if err := h.investmentLogic.CreateInvestment(uint(investorID), investment); err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": investment})
}

// ListInvestments 分页获取全部投资记录
func (h *InvestmentHandler) ListInvestments(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	investments, err := h.investmentLogic.ListInvestments(skip, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": investments})
}
