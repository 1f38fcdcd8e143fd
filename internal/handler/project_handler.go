package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/fms/internal/logic"
	"github.com/blues/fms/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProjectHandler 项目处理器
type ProjectHandler struct {
	projectLogic    *logic.ProjectLogic
	investmentLogic *logic.InvestmentLogic
}

// NewProjectHandler 创建项目处理器
func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{
		projectLogic:    logic.NewProjectLogic(db),
		investmentLogic: logic.NewInvestmentLogic(db),
	}
}

// CreateProject 创建项目
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	creatorID, err := strconv.ParseUint(c.Query("creator_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的创作者ID"})
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数: " + err.Error()})
		return
	}

	project := &model.Project{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		TargetRevenue: req.TargetRevenue,
		ImageURL:      req.ImageURL,
	}

	if err := h.projectLogic.CreateProject(uint(creatorID), project); err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": project})
}

// ListProjects 分页获取启用中的项目，可按分类过滤
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	category := c.Query("category")

	projects, err := h.projectLogic.ListProjects(skip, limit, category)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": projects})
}

// GetProject 获取项目详情
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的项目ID"})
		return
	}

	project, err := h.projectLogic.GetProject(uint(projectID))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": project})
}

// UpdateProject 部分更新项目
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的项目ID"})
		return
	}

	var patch logic.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数: " + err.Error()})
		return
	}

	project, err := h.projectLogic.UpdateProject(uint(projectID), &patch)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": project})
}

// DeactivateProject 下架项目（软删除）
func (h *ProjectHandler) DeactivateProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的项目ID"})
		return
	}

	if err := h.projectLogic.DeactivateProject(uint(projectID)); err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "项目已下架"})
}

// GetProjectInvestments 获取项目的投资记录
func (h *ProjectHandler) GetProjectInvestments(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的项目ID"})
		return
	}

	investments, err := h.investmentLogic.ListProjectInvestments(uint(projectID))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": investments})
}
