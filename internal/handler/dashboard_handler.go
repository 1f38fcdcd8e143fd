package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/fms/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardHandler 仪表盘处理器
type DashboardHandler struct {
	dashboardLogic *logic.DashboardLogic
}

// NewDashboardHandler 创建仪表盘处理器
func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{
		dashboardLogic: logic.NewDashboardLogic(db),
	}
}

// GetCreatorDashboard 获取创作者仪表盘
func (h *DashboardHandler) GetCreatorDashboard(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	dashboard, err := h.dashboardLogic.GetCreatorDashboard(uint(userID))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetInvestorDashboard 获取投资人仪表盘
func (h *DashboardHandler) GetInvestorDashboard(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return
	}

	dashboard, err := h.dashboardLogic.GetInvestorDashboard(uint(userID))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
