package views

import (
	"sync"

	"sphereoftech/internal/config"
	"sphereoftech/internal/logging"
	"sphereoftech/internal/routes"
)

// Navigator owns the current route and the view instances behind it. Views
// are created on first use and unmounted when navigation leaves them: the
// next visit starts from fresh state, and pending reveals of an unmounted
// view are canceled. Markers kept in the session store outlive the views.
// Settings edits the loaded configuration and lives as long as the navigator.
type Navigator struct {
	env *Env
	cfg *config.Config

	mu      sync.Mutex
	current routes.Route

	dashboard *Dashboard
	stocks    *StockTracker
	news      *News
	planner   *Planner
	risk      *RiskFeed
	charts    *Charts
	settings  *Settings
	login     *Login
	signup    *Signup
	notFound  *NotFound
}

// NewNavigator creates a navigator positioned at path. Views that navigate
// (login, signup) move this navigator.
func NewNavigator(env *Env, cfg *config.Config, path string) *Navigator {
	if cfg == nil {
		cfg = config.Default()
	}
	env.notifier()
	n := &Navigator{env: env, cfg: cfg}
	if env.Navigate == nil {
		env.Navigate = func(p string) { n.Open(p) }
	}
	n.current = routes.Resolve(path)
	return n
}

// Env returns the shared view environment.
func (n *Navigator) Env() *Env {
	return n.env
}

// Current returns the active route.
func (n *Navigator) Current() routes.Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Open moves to path and returns the resolved route. Every view other than
// the destination is unmounted.
func (n *Navigator) Open(path string) routes.Route {
	n.mu.Lock()
	from := n.current.Path
	n.current = routes.Resolve(path)
	to := n.current
	cancels := n.unmountLocked(to.View)
	n.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
	logging.LogNavigation(n.env.Logger, from, to.Path)
	return to
}

// unmountLocked drops every view instance except keep and returns the
// cancellations of their pending reveals. The not-found view is always
// dropped since it is bound to the path that produced it.
func (n *Navigator) unmountLocked(keep routes.View) []func() {
	var cancels []func()
	if keep != routes.ViewDashboard && n.dashboard != nil {
		cancels = append(cancels, n.dashboard.CancelPending)
		n.dashboard = nil
	}
	if keep != routes.ViewStockTracker && n.stocks != nil {
		refresh := n.stocks.RefreshAction()
		cancels = append(cancels, func() { refresh.Cancel() })
		n.stocks = nil
	}
	if keep != routes.ViewLogin && n.login != nil {
		act := n.login.Action()
		cancels = append(cancels, func() { act.Cancel() })
		n.login = nil
	}
	if keep != routes.ViewSignup && n.signup != nil {
		act := n.signup.Action()
		cancels = append(cancels, func() { act.Cancel() })
		n.signup = nil
	}
	if keep != routes.ViewNews {
		n.news = nil
	}
	if keep != routes.ViewPlanner {
		n.planner = nil
	}
	if keep != routes.ViewRiskFeed {
		n.risk = nil
	}
	if keep != routes.ViewCharts {
		n.charts = nil
	}
	n.notFound = nil
	return cancels
}

// Dashboard returns the dashboard view.
func (n *Navigator) Dashboard() *Dashboard {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.dashboard == nil {
		n.dashboard = NewDashboard(n.env)
	}
	return n.dashboard
}

// StockTracker returns the stock tracker view.
func (n *Navigator) StockTracker() *StockTracker {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stocks == nil {
		n.stocks = NewStockTracker(n.env)
	}
	return n.stocks
}

// News returns the news view.
func (n *Navigator) News() *News {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.news == nil {
		n.news = NewNews(n.env)
	}
	return n.news
}

// Planner returns the planner view.
func (n *Navigator) Planner() *Planner {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.planner == nil {
		n.planner = NewPlanner(n.env)
	}
	return n.planner
}

// RiskFeed returns the risk feed view.
func (n *Navigator) RiskFeed() *RiskFeed {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.risk == nil {
		n.risk = NewRiskFeed(n.env)
	}
	return n.risk
}

// Charts returns the predictive charts view.
func (n *Navigator) Charts() *Charts {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.charts == nil {
		n.charts = NewCharts(n.env)
	}
	return n.charts
}

// Settings returns the settings view.
func (n *Navigator) Settings() *Settings {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.settings == nil {
		n.settings = NewSettings(n.env, n.cfg)
	}
	return n.settings
}

// Login returns the sign-in view.
func (n *Navigator) Login() *Login {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.login == nil {
		n.login = NewLogin(n.env)
	}
	return n.login
}

// Signup returns the sign-up view.
func (n *Navigator) Signup() *Signup {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.signup == nil {
		n.signup = NewSignup(n.env)
	}
	return n.signup
}

// NotFound returns the catch-all view for the current path.
func (n *Navigator) NotFound() *NotFound {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.notFound == nil {
		n.notFound = NewNotFound(n.env, n.current.Path)
	}
	return n.notFound
}

// CancelPending drops every pending reveal across the mounted views.
func (n *Navigator) CancelPending() {
	n.mu.Lock()
	dashboard, stocks, login, signup := n.dashboard, n.stocks, n.login, n.signup
	n.mu.Unlock()

	if dashboard != nil {
		dashboard.CancelPending()
	}
	if stocks != nil {
		stocks.RefreshAction().Cancel()
	}
	if login != nil {
		login.Action().Cancel()
	}
	if signup != nil {
		signup.Action().Cancel()
	}
}
