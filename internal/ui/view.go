package ui

import (
	"github.com/MKhiriev/auth-bridge/internal/validators"
	"github.com/MKhiriev/auth-bridge/models"
)

// Page names accepted by Renderer.Render.
const (
	PageLogin     = "login"
	PageSignup    = "signup"
	PageDashboard = "dashboard"
)

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	// PageTitle is prefixed to the application name in <title>. An empty
	// PageTitle falls back to the site title.
	PageTitle string

	// Filled by the Renderer.
	Title     string
	SiteTitle string
	AppName   string
	Version   string
	Identity  IdentityConfig

	CurrentPage     string
	IsAuthenticated bool
	User            *models.User
}

// LayoutData implements LayoutProvider.
func (l *Layout) LayoutData() *Layout {
	return l
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}

// IdentityConfig is the public part of the identity provider settings the
// browser needs for the Google popup.
type IdentityConfig struct {
	APIKey        string
	AuthDomain    string
	ProjectID     string
	GoogleEnabled bool
}

type LoginPage struct {
	Layout

	Email      string
	Errors     models.FormErrors
	Registered bool
}

type SignupPage struct {
	Layout

	Email       string
	AcceptTerms bool
	Errors      models.FormErrors
	Checklist   []validators.StrengthItem

	// Strength grades the submitted password. It is nil until a password
	// has been posted.
	Strength *models.PasswordStrength
}

// PasswordsMatch reports whether the posted confirmation equals the password.
func (p *SignupPage) PasswordsMatch() bool {
	return p.Strength != nil && p.Strength.Match
}

// StatCard is one of the summary cards at the top of the dashboard.
type StatCard struct {
	Label string
	Value string
	Icon  string
}

// Step is one entry of the "Getting Started" card.
type Step struct {
	Number      int
	Title       string
	Description string
	Color       string
}

type DashboardPage struct {
	Layout

	DisplayName string
	Stats       []StatCard
	Steps       []Step
	LogoutError string
}

// NewDashboardPage builds the dashboard for user. A nil user renders the
// shell with empty identity fields.
func NewDashboardPage(user *models.User, logoutError string) *DashboardPage {
	var email, display string
	if user != nil {
		email = user.Email
		display = user.DisplayName()
	}

	return &DashboardPage{
		Layout: Layout{
			PageTitle:       "Dashboard",
			CurrentPage:     PageDashboard,
			IsAuthenticated: true,
			User:            user,
		},
		DisplayName: display,
		Stats: []StatCard{
			{Label: "Account Email", Value: email, Icon: "mail"},
			{Label: "Account Status", Value: "Active", Icon: "check"},
			{Label: "Last Login", Value: "Today", Icon: "clock"},
		},
		Steps:       gettingStartedSteps,
		LogoutError: logoutError,
	}
}

var gettingStartedSteps = []Step{
	{Number: 1, Title: "Update Your Profile", Description: "Add your profile information and picture.", Color: "blue"},
	{Number: 2, Title: "Explore Features", Description: "Check out the sidebar to explore all available features.", Color: "green"},
	{Number: 3, Title: "Configure Settings", Description: "Customize your preferences in the settings page.", Color: "purple"},
	{Number: 4, Title: "Get Help", Description: "Need help? Contact our support team.", Color: "orange"},
}
