package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/softcrates/fieldsync/internal/application/proxy"
	"github.com/softcrates/fieldsync/internal/presentation/http/dto/response"
	"github.com/softcrates/fieldsync/pkg/pagination"
)

// ArticleHandler handles article catalog endpoints
type ArticleHandler struct {
	articles *proxy.ArticleProxy
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articles *proxy.ArticleProxy) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// List handles GET /articles
func (h *ArticleHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	articles, err := h.articles.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Articles retrieved", articles)
}

// Search handles GET /articles/search?name=
func (h *ArticleHandler) Search(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		response.BadRequest(c, "Search term is required")
		return
	}

	articles, err := h.articles.SearchByName(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Articles retrieved", articles)
}

// GetByCode handles GET /articles/:code
func (h *ArticleHandler) GetByCode(c *gin.Context) {
	article, err := h.articles.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if article == nil {
		response.NotFound(c, "Article not found")
		return
	}
	response.OK(c, "Article retrieved", article)
}
