package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	"github.com/softcrates/fieldsync/pkg/pagination"
)

// FetchArticles returns a page of the article catalog.
func (c *Client) FetchArticles(ctx context.Context, params *pagination.PaginationParams) ([]entity.Article, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("per_page", strconv.Itoa(params.PerPage))

	var articles []entity.Article
	if err := c.get(ctx, "fetch articles", "/articles", query, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// FetchAllArticles returns the full catalog for mirror refresh.
func (c *Client) FetchAllArticles(ctx context.Context) ([]entity.Article, error) {
	var articles []entity.Article
	if err := c.get(ctx, "fetch all articles", "/articles/all", nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// SearchArticles searches the catalog by description.
func (c *Client) SearchArticles(ctx context.Context, name string) ([]entity.Article, error) {
	query := url.Values{}
	query.Set("name", name)

	var articles []entity.Article
	if err := c.get(ctx, "search articles", "/articles/search", query, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// FetchArticleByCode returns a single article, or nil when the server does
// not know the code.
func (c *Client) FetchArticleByCode(ctx context.Context, code string) (*entity.Article, error) {
	var article entity.Article
	if err := c.get(ctx, "fetch article", "/articles/"+url.PathEscape(code), nil, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// FetchDiscountTiers returns every discount class schedule.
func (c *Client) FetchDiscountTiers(ctx context.Context) ([]entity.DiscountTier, error) {
	var tiers []entity.DiscountTier
	if err := c.get(ctx, "fetch discount tiers", "/discounts/tiers", nil, &tiers); err != nil {
		return nil, err
	}
	return tiers, nil
}

// FetchDiscountAssignments returns every client-article discount assignment.
func (c *Client) FetchDiscountAssignments(ctx context.Context) ([]entity.ClientArticleDiscount, error) {
	var assignments []entity.ClientArticleDiscount
	if err := c.get(ctx, "fetch discount assignments", "/discounts/assignments", nil, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// FetchArticlesWithDiscount returns the catalog annotated with the base
// discount the client gets on each article.
func (c *Client) FetchArticlesWithDiscount(ctx context.Context, clientID int) ([]entity.ArticleDiscount, error) {
	var articles []entity.ArticleDiscount
	path := "/clients/" + strconv.Itoa(clientID) + "/articles"
	if err := c.get(ctx, "fetch client catalog", path, nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// FetchUsers returns the user accounts mirrored for offline login.
func (c *Client) FetchUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := c.get(ctx, "fetch users", "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
