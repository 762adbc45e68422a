// Package routes maps navigable paths to top-level views.
package routes

import "strings"

// View identifies a top-level view.
type View string

const (
	ViewSignup       View = "signup"
	ViewLogin        View = "login"
	ViewDashboard    View = "dashboard"
	ViewStockTracker View = "stock-tracker"
	ViewNews         View = "news"
	ViewPlanner      View = "planner"
	ViewRiskFeed     View = "risk-feed"
	ViewCharts       View = "charts"
	ViewSettings     View = "settings"
	ViewNotFound     View = "not-found"
)

// Route is a static path bound to one view.
type Route struct {
	Path  string `json:"path"`
	View  View   `json:"view"`
	Title string `json:"title"`
	// Chrome reports whether the view is shown inside the sidebar layout.
	Chrome bool `json:"chrome"`
}

var table = []Route{
	{Path: "/", View: ViewSignup, Title: "Create Account"},
	{Path: "/login", View: ViewLogin, Title: "Sign In"},
	{Path: "/signup", View: ViewSignup, Title: "Create Account"},
	{Path: "/dashboard", View: ViewDashboard, Title: "Dashboard", Chrome: true},
	{Path: "/stock-tracker", View: ViewStockTracker, Title: "Stock Tracker", Chrome: true},
	{Path: "/news", View: ViewNews, Title: "News Summarizer", Chrome: true},
	{Path: "/planner", View: ViewPlanner, Title: "Planner", Chrome: true},
	{Path: "/risk-feed", View: ViewRiskFeed, Title: "AI Risk Feed", Chrome: true},
	{Path: "/charts", View: ViewCharts, Title: "Predictive Charts", Chrome: true},
	{Path: "/settings", View: ViewSettings, Title: "Settings", Chrome: true},
}

// NotFound is the catch-all route.
var NotFound = Route{View: ViewNotFound, Title: "Page Not Found"}

// SidebarItem is one entry of the navigation sidebar.
type SidebarItem struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

var sidebar = []SidebarItem{
	{Title: "Dashboard", Path: "/dashboard"},
	{Title: "Stock Tracker", Path: "/stock-tracker"},
	{Title: "News Summarizer", Path: "/news"},
	{Title: "Predictive Charts", Path: "/charts"},
	{Title: "AI Risk Feed", Path: "/risk-feed"},
	{Title: "Planner", Path: "/planner"},
	{Title: "Settings", Path: "/settings"},
}

// All returns every declared route in declaration order.
func All() []Route {
	return append([]Route(nil), table...)
}

// Sidebar returns the sidebar items in display order.
func Sidebar() []SidebarItem {
	return append([]SidebarItem(nil), sidebar...)
}

// Resolve returns the route for path. Matching is exact apart from a trailing
// slash; anything unknown resolves to NotFound carrying the requested path.
func Resolve(path string) Route {
	normalized := path
	if len(normalized) > 1 {
		normalized = strings.TrimSuffix(normalized, "/")
	}
	for _, r := range table {
		if r.Path == normalized {
			return r
		}
	}
	nf := NotFound
	nf.Path = path
	return nf
}

// IsActive reports whether a sidebar item is the one for the current path.
func IsActive(item SidebarItem, currentPath string) bool {
	return Resolve(currentPath).Path == item.Path
}

// SidebarIndex returns the sidebar position of path, or -1.
func SidebarIndex(path string) int {
	for i, item := range sidebar {
		if IsActive(item, path) {
			return i
		}
	}
	return -1
}
