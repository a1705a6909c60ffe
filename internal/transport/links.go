package transport

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"urlpro/internal/service"
	"urlpro/internal/types"
	"urlpro/internal/visitor"
)

const flashCookie = "flash"

type LinkHandler struct {
	shortener  *service.Shortener
	redirector *service.Redirector
}

func NewLinkHandler(shortener *service.Shortener, redirector *service.Redirector) *LinkHandler {
	return &LinkHandler{shortener: shortener, redirector: redirector}
}

type shortenRequest struct {
	URL         string `json:"url" binding:"required"`
	CustomAlias string `json:"custom_alias"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Password    string `json:"password"`
	ExpiresDays int    `json:"expires_days"`
	IsPrivate   bool   `json:"is_private"`
	Tags        string `json:"tags"`
	CategoryID  *int64 `json:"category_id"`
	DomainID    *int64 `json:"domain_id"`
}

type shortenResponse struct {
	ShortURL    string    `json:"short_url"`
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	QRCode      string    `json:"qr_code"`
	CreatedAt   time.Time `json:"created_at"`
}

type slugPage struct {
	Slug  string
	Error string
}

// Redirect serves both the plain visit and the password form submission.
func (h *LinkHandler) Redirect(c *gin.Context) {
	slug := c.Param("slug")
	req := types.RedirectRequest{
		Slug: slug,
		Visit: types.Visit{
			IP:        visitor.ClientIP(c.GetHeader("X-Forwarded-For"), c.Request.RemoteAddr),
			UserAgent: c.Request.UserAgent(),
			Referer:   c.Request.Referer(),
		},
	}
	if c.Request.Method == http.MethodPost {
		pw := c.PostForm("password")
		req.Password = &pw
	}

	target, err := h.redirector.Redirect(c.Request.Context(), req)
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, target)
	case errors.Is(err, types.ErrNotFound):
		c.HTML(http.StatusNotFound, "not_found.html", slugPage{Slug: slug})
	case errors.Is(err, types.ErrExpired):
		c.HTML(http.StatusGone, "expired.html", slugPage{Slug: slug})
	case errors.Is(err, types.ErrPasswordRequired):
		c.HTML(http.StatusOK, "password.html", slugPage{Slug: slug})
	case errors.Is(err, types.ErrWrongPassword):
		c.HTML(http.StatusUnauthorized, "password.html", slugPage{Slug: slug, Error: "Incorrect password."})
	default:
		logrus.WithError(err).WithField("slug", slug).Error("redirect failed")
		c.String(http.StatusInternalServerError, internalErrorMessage)
	}
}

// APIShorten authenticates the X-API-Key before reading the body so an
// unknown key is rejected without side effects.
func (h *LinkHandler) APIShorten(c *gin.Context) {
	var ownerID *int64
	var apiKey string
	if key := c.GetHeader(headerAPIKey); key != "" {
		profile := apiProfile(c)
		if profile == nil {
			writeError(c, types.ErrInvalidAPIKey)
			return
		}
		ownerID = &profile.UserID
		apiKey = key
	} else if id := currentUser(c); id != 0 {
		ownerID = &id
	}

	var req shortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	u, err := h.shortener.Shorten(c.Request.Context(), types.ShortenRequest{
		URL:         req.URL,
		CustomAlias: req.CustomAlias,
		Title:       req.Title,
		Description: req.Description,
		Password:    req.Password,
		ExpiresDays: req.ExpiresDays,
		IsPrivate:   req.IsPrivate,
		Tags:        req.Tags,
		CategoryID:  req.CategoryID,
		DomainID:    req.DomainID,
		OwnerID:     ownerID,
		APIKey:      apiKey,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, shortenResponse{
		ShortURL:    u.Link(h.shortener.BaseURL()),
		ShortCode:   u.ShortCode,
		OriginalURL: u.OriginalURL,
		QRCode:      u.QRCode,
		CreatedAt:   u.CreatedAt,
	})
}

// Shorten is the quick form: identical public targets share one link.
func (h *LinkHandler) Shorten(c *gin.Context) {
	u, created, err := h.shortener.ShortenOrReuse(c.Request.Context(), c.PostForm("url"))
	if err != nil {
		redirectWithFlash(c, "Error: "+errorMessage(err))
		return
	}
	if created {
		redirectWithFlash(c, "Short URL created: "+u.Link(h.shortener.BaseURL()))
		return
	}
	redirectWithFlash(c, "Short URL: "+u.Link(h.shortener.BaseURL()))
}

func (h *LinkHandler) AdvancedShorten(c *gin.Context) {
	req := types.ShortenRequest{
		URL:           c.PostForm("url"),
		CustomAlias:   c.PostForm("custom_alias"),
		Title:         c.PostForm("title"),
		Description:   c.PostForm("description"),
		Password:      c.PostForm("password"),
		Tags:          c.PostForm("tags"),
		IsPrivate:     c.PostForm("is_private") == "on",
		FetchMetadata: true,
		AddScheme:     true,
	}
	if id := currentUser(c); id != 0 {
		req.OwnerID = &id
	}

	if raw := strings.TrimSpace(c.PostForm("expires_days")); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			redirectWithFlash(c, "Error: expires_days must be a non-negative number")
			return
		}
		req.ExpiresDays = days
	}
	if raw := strings.TrimSpace(c.PostForm("category")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			redirectWithFlash(c, "Error: invalid category")
			return
		}
		req.CategoryID = &id
	}

	u, err := h.shortener.Shorten(c.Request.Context(), req)
	if err != nil {
		redirectWithFlash(c, "Error: "+errorMessage(err))
		return
	}
	redirectWithFlash(c, fmt.Sprintf("Short URL created: %s", u.Link(h.shortener.BaseURL())))
}

func (h *LinkHandler) QRCode(c *gin.Context) {
	png, err := h.shortener.QRCode(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func redirectWithFlash(c *gin.Context, msg string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, msg, 60, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// takeFlash reads and clears the one-shot message.
func takeFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msg
}
