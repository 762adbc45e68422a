package views

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"sphereoftech/internal/action"
	apperrors "sphereoftech/internal/errors"
	"sphereoftech/internal/listview"
	"sphereoftech/internal/logging"
	"sphereoftech/internal/mockdata"
	"sphereoftech/internal/models"
)

var stockFields = listview.Fields[models.StockQuote]{
	Text: func(q models.StockQuote) []string { return []string{q.Symbol, q.Name} },
}

// StockTracker is the stock tracker view.
type StockTracker struct {
	env       *Env
	logger    zerolog.Logger
	list      *listview.View[models.StockQuote]
	portfolio models.PortfolioStats
	refresh   *action.Action[time.Time]
	now       func() time.Time
}

// NewStockTracker creates the view with the first stock selected.
func NewStockTracker(env *Env) *StockTracker {
	v := &StockTracker{
		env:       env,
		logger:    logging.WithView(env.Logger, "stock-tracker"),
		list:      listview.MustNew(mockdata.Stocks(), stockFields),
		portfolio: mockdata.Portfolio(),
		now:       time.Now,
	}
	v.refresh = newAction(env, action.Spec[time.Time]{
		Name:           "refresh-market",
		Delay:          action.MarketRefreshDelay,
		Reveal:         func() time.Time { return v.now() },
		SuccessMessage: "Market data updated with AI analysis",
	})
	return v
}

// Stocks returns every quote.
func (v *StockTracker) Stocks() []models.StockQuote {
	return v.list.Visible()
}

// List exposes the underlying list for navigation.
func (v *StockTracker) List() *listview.View[models.StockQuote] {
	return v.list
}

// Selected returns the quote shown in the detail panel.
func (v *StockTracker) Selected() models.StockQuote {
	return v.list.Selected()
}

// Select selects a quote by symbol, case-insensitively.
func (v *StockTracker) Select(symbol string) error {
	if err := v.list.Select(strings.ToUpper(symbol)); err != nil {
		return apperrors.NewViewError("stock-tracker", "select", err)
	}
	logging.LogSelection(v.logger, "stock-tracker", v.list.Selected().Key(), v.list.SelectionVisible())
	return nil
}

// Portfolio returns the portfolio summary.
func (v *StockTracker) Portfolio() models.PortfolioStats {
	return v.portfolio
}

// Refresh starts the simulated market refresh.
func (v *StockTracker) Refresh(ctx context.Context) error {
	return v.refresh.Trigger(ctx)
}

// Refreshing reports whether a refresh is pending.
func (v *StockTracker) Refreshing() bool {
	return v.refresh.Pending()
}

// RefreshAction exposes the refresh action for waiting and completion hooks.
func (v *StockTracker) RefreshAction() *action.Action[time.Time] {
	return v.refresh
}

// LastUpdated returns when the last refresh revealed.
func (v *StockTracker) LastUpdated() (time.Time, bool) {
	return v.refresh.Result()
}

// Watch adds the selected quote to the session watchlist.
func (v *StockTracker) Watch(ctx context.Context) error {
	symbol := v.Selected().Symbol
	if v.env.Store != nil {
		if err := v.env.Store.AddToWatchlist(ctx, symbol); err != nil {
			v.env.notifier().Error("Could not add %s to watchlist", symbol)
			return apperrors.NewViewError("stock-tracker", "watch", err)
		}
	}
	v.env.notifier().Success("%s added to watchlist", symbol)
	return nil
}

// Watchlist returns the watched symbols.
func (v *StockTracker) Watchlist(ctx context.Context) ([]string, error) {
	if v.env.Store == nil {
		return nil, nil
	}
	return v.env.Store.GetWatchlist(ctx)
}
