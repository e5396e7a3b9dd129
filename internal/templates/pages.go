package templates

import "github.com/sbilibin2017/club-polls/internal/models"

// Page is a typed view model bound to exactly one template.
type Page interface {
	TemplateName() string
}

// MainPage is the static landing page.
type MainPage struct{}

// TemplateName implements Page.
func (MainPage) TemplateName() string { return "main.html" }

// MembersPage lists all members.
type MembersPage struct {
	Members []models.Member
}

// TemplateName implements Page.
func (MembersPage) TemplateName() string { return "all_members.html" }

// DetailsPage shows a single member.
type DetailsPage struct {
	Member models.Member
}

// TemplateName implements Page.
func (DetailsPage) TemplateName() string { return "details.html" }

// TestingPage is the template demo page.
type TestingPage struct {
	Fruits    []string
	Firstname string
	Members   []models.Member
}

// TemplateName implements Page.
func (TestingPage) TemplateName() string { return "template.html" }
