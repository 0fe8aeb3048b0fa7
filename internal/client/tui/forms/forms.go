// Package forms builds the huh forms of the TUI: login, signup and
// story submission. Each form binds to a value struct owned by the
// caller, the caller reads it once the form reaches StateCompleted.
package forms

import (
	"errors"
	"net/url"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type LoginValues struct {
	Username string
	Password string
}

type SignupValues struct {
	Name     string
	Username string
	Password string
}

type SubmitValues struct {
	Author string
	Title  string
	URL    string
}

func Login(v *LoginValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&v.Username).
				Validate(required("username")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&v.Password).
				Validate(required("password")),
		).Title("Log in"),
	).WithTheme(createTheme())
}

func Signup(v *SignupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&v.Name).
				Validate(required("name")),
			huh.NewInput().
				Title("Username").
				Value(&v.Username).
				Validate(required("username")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&v.Password).
				Validate(required("password")),
		).Title("Create account"),
	).WithTheme(createTheme())
}

func Submit(v *SubmitValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Author").
				Value(&v.Author).
				Validate(required("author")),
			huh.NewInput().
				Title("Title").
				Value(&v.Title).
				Validate(required("title")),
			huh.NewInput().
				Title("URL").
				Placeholder("https://...").
				Value(&v.URL).
				Validate(validURL),
		).Title("Submit a story"),
	).WithTheme(createTheme())
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func validURL(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("url is required")
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("enter a full url, e.g. https://example.com")
	}
	return nil
}

func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	amber := lipgloss.Color("#F59E0B")
	gray := lipgloss.Color("#6B7280")
	grayLight := lipgloss.Color("#E5E7EB")
	red := lipgloss.Color("#F87171")

	t.Group.Title = lipgloss.NewStyle().
		Foreground(amber).
		Bold(true).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(amber)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(amber).
		Bold(true)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(red).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(red)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(amber)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(gray)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(amber)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(grayLight)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(gray)

	return t
}
