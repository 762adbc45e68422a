package views

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	apperrors "sphereoftech/internal/errors"
	"sphereoftech/internal/listview"
	"sphereoftech/internal/logging"
	"sphereoftech/internal/mockdata"
	"sphereoftech/internal/models"
)

// Articles match on title and tags; category is an exact selector.
var newsFields = listview.Fields[models.NewsArticle]{
	Text: func(a models.NewsArticle) []string {
		return append([]string{a.Title}, a.Tags...)
	},
	Category: func(a models.NewsArticle) string { return a.Category },
}

// News is the news summarizer view.
type News struct {
	env    *Env
	logger zerolog.Logger
	list   *listview.View[models.NewsArticle]
}

// NewNews creates the view with the first article selected and no filter.
func NewNews(env *Env) *News {
	return &News{
		env:    env,
		logger: logging.WithView(env.Logger, "news"),
		list:   listview.MustNew(mockdata.News(), newsFields),
	}
}

// List exposes the underlying list for navigation.
func (v *News) List() *listview.View[models.NewsArticle] {
	return v.list
}

// SetSearch updates the search text. The selection is unchanged.
func (v *News) SetSearch(search string) {
	v.list.SetSearch(search)
}

// SetCategory updates the category selector. The selection is unchanged.
func (v *News) SetCategory(category string) error {
	if !contains(v.list.Categories(), category) && category != "" {
		return apperrors.NewValidationError("category", category, "unknown news category")
	}
	v.list.SetCategory(category)
	return nil
}

// CycleCategory advances to the next category option.
func (v *News) CycleCategory() string {
	return v.list.CycleCategory()
}

// Categories returns All plus the article categories.
func (v *News) Categories() []string {
	return v.list.Categories()
}

// Query returns the active filter.
func (v *News) Query() listview.Query {
	return v.list.Query()
}

// Visible returns the articles matching the filter.
func (v *News) Visible() []models.NewsArticle {
	return v.list.Visible()
}

// Selected returns the article shown in the detail panel.
func (v *News) Selected() models.NewsArticle {
	return v.list.Selected()
}

// SelectionVisible reports whether the selected article passes the filter.
func (v *News) SelectionVisible() bool {
	return v.list.SelectionVisible()
}

// Select selects an article by id.
func (v *News) Select(id int) error {
	if err := v.list.Select(strconv.Itoa(id)); err != nil {
		return apperrors.NewViewError("news", "select", err)
	}
	logging.LogSelection(v.logger, "news", strconv.Itoa(id), v.list.SelectionVisible())
	return nil
}

// Bookmark bookmarks the selected article.
func (v *News) Bookmark(ctx context.Context) error {
	article := v.Selected()
	if v.env.Store != nil {
		if err := v.env.Store.AddBookmark(ctx, article.ID, article.Title); err != nil {
			v.env.notifier().Error("Could not bookmark article")
			return apperrors.NewViewError("news", "bookmark", err)
		}
	}
	v.env.notifier().Success("Article \"%s\" bookmarked!", article.Title)
	return nil
}

// IsBookmarked reports whether an article was bookmarked this session.
func (v *News) IsBookmarked(ctx context.Context, id int) bool {
	if v.env.Store == nil {
		return false
	}
	ok, err := v.env.Store.IsBookmarked(ctx, id)
	if err != nil {
		v.logger.Warn().Err(err).Int("article", id).Msg("bookmark lookup failed")
		return false
	}
	return ok
}

// ShareLink returns the link copied by Share.
func (v *News) ShareLink() string {
	return ShareBaseURL + strconv.Itoa(v.Selected().ID)
}

// Share copies the selected article link to the clipboard. A clipboard
// failure is logged; the share still reports success, as the link is shown.
func (v *News) Share() string {
	link := v.ShareLink()
	if err := v.env.clipboard().WriteAll(link); err != nil {
		v.logger.Warn().Err(err).Str("link", link).Msg("clipboard write failed")
	}
	v.env.notifier().Success("Article link copied to clipboard!")
	return link
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
