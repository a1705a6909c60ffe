package transport

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"urlpro/internal/service"
	"urlpro/internal/types"
)

type AccountHandler struct {
	accounts      *service.Accounts
	notifications *service.Notifications
	catalog       *service.Catalog
}

func NewAccountHandler(accounts *service.Accounts, notifications *service.Notifications, catalog *service.Catalog) *AccountHandler {
	return &AccountHandler{accounts: accounts, notifications: notifications, catalog: catalog}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type categoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type domainRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *AccountHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, profile, err := h.accounts.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "profile": profile})
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := h.accounts.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AccountHandler) Profile(c *gin.Context) {
	user, profile, err := h.accounts.Profile(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "profile": profile})
}

func (h *AccountHandler) UpdatePreferences(c *gin.Context) {
	var prefs types.ProfilePreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	profile, err := h.accounts.UpdatePreferences(c.Request.Context(), currentUser(c), prefs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *AccountHandler) RotateAPIKey(c *gin.Context) {
	key, err := h.accounts.RotateAPIKey(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"api_key": key})
}

func (h *AccountHandler) Notifications(c *gin.Context) {
	list, err := h.notifications.List(c.Request.Context(), currentUser(c), c.Query("unread") == "true")
	if err != nil {
		writeError(c, err)
		return
	}
	if list == nil {
		list = []types.Notification{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *AccountHandler) MarkNotificationRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}
	if err := h.notifications.MarkRead(c.Request.Context(), currentUser(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AccountHandler) Categories(c *gin.Context) {
	list, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if list == nil {
		list = []types.Category{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *AccountHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	cat, err := h.catalog.CreateCategory(c.Request.Context(), req.Name, req.Color, req.Icon)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *AccountHandler) Domains(c *gin.Context) {
	list, err := h.catalog.Domains(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if list == nil {
		list = []types.Domain{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *AccountHandler) CreateDomain(c *gin.Context) {
	var req domainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	dom, err := h.catalog.CreateDomain(c.Request.Context(), currentUser(c), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dom)
}
