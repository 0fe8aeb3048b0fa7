// Package tui implements the interactive terminal front end. The root
// App model owns the session, routes keys to the active screen and
// turns every service call into a command/message pair so the update
// loop never blocks.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dspetrov/hacksnooze/internal/client/api"
	"github.com/dspetrov/hacksnooze/internal/client/models"
	"github.com/dspetrov/hacksnooze/internal/client/services"
	"github.com/dspetrov/hacksnooze/internal/client/session"
	"github.com/dspetrov/hacksnooze/internal/client/tui/forms"
	"github.com/dspetrov/hacksnooze/internal/client/tui/storylist"
	"github.com/dspetrov/hacksnooze/internal/client/tui/styles"
)

// Screen identifies the active TUI screen.
type Screen int

const (
	ScreenFeed Screen = iota
	ScreenMyStories
	ScreenFavorites
	ScreenProfile
	ScreenLogin
	ScreenSignup
	ScreenSubmit
)

// sessionResumedMsg is sent once the saved credentials were checked.
type sessionResumedMsg struct {
	user *models.User
	err  error
}

// feedLoadedMsg is sent when the global story list arrived.
type feedLoadedMsg struct {
	list *models.StoryList
	err  error
}

type loggedInMsg struct {
	user *models.User
	err  error
}

type signedUpMsg struct {
	user *models.User
	err  error
}

type loggedOutMsg struct {
	err error
}

type storyPostedMsg struct {
	story models.Story
	err   error
}

type storyDeletedMsg struct {
	id  string
	err error
}

// favoriteToggledMsg reports the outcome of a favorite toggle.
// marked is the state the toggle tried to reach. On success it carries
// the refreshed lists; they are applied to the session inside Update so
// the command goroutine never writes shared state.
type favoriteToggledMsg struct {
	id         string
	marked     bool
	favorites  []models.Story
	ownStories []models.Story
	err        error
}

// App is the root model.
type App struct {
	auth    services.AuthService
	stories services.StoryService
	sess    *session.Session

	screen  Screen
	width   int
	height  int
	loading bool

	list *storylist.Model
	spin spinner.Model

	form       *huh.Form
	loginVals  forms.LoginValues
	signupVals forms.SignupValues
	submitVals forms.SubmitValues

	status    string
	statusErr bool
}

// New creates the root model. The session starts anonymous, Init
// resumes the saved login and loads the feed.
func New(auth services.AuthService, stories services.StoryService) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &App{
		auth:    auth,
		stories: stories,
		sess:    session.New(),
		screen:  ScreenFeed,
		list:    storylist.New("no stories yet"),
		spin:    sp,
		loading: true,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, a.resumeSession())
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetHeight(a.contentHeight())
		if a.form != nil {
			return a.updateForm(msg)
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			return a.updateForm(msg)
		}
		if a.loading {
			return a, nil
		}
		return a.updateKeys(msg)

	case sessionResumedMsg:
		return a.handleSessionResumed(msg)

	case feedLoadedMsg:
		a.loading = false
		if msg.err != nil {
			a.setError("could not load stories: " + msg.err.Error())
			return a, nil
		}
		a.sess.Stories = msg.list
		a.syncList()
		return a, nil

	case loggedInMsg:
		a.loading = false
		if msg.err != nil {
			a.setError(loginFailureText(msg.err))
			return a, a.openForm(ScreenLogin)
		}
		a.sess.User = msg.user
		a.screen = ScreenFeed
		a.syncList()
		a.setInfo("logged in as " + msg.user.Username)
		return a, nil

	case signedUpMsg:
		a.loading = false
		if msg.err != nil {
			a.setError(signupFailureText(msg.err))
			return a, a.openForm(ScreenSignup)
		}
		a.sess.User = msg.user
		a.screen = ScreenFeed
		a.syncList()
		a.setInfo("welcome, " + msg.user.Username)
		return a, nil

	case loggedOutMsg:
		a.loading = false
		if msg.err != nil {
			a.setError("logout failed: " + msg.err.Error())
			return a, nil
		}
		a.sess.Reset()
		a.screen = ScreenFeed
		a.syncList()
		a.setInfo("logged out")
		return a, nil

	case storyPostedMsg:
		a.loading = false
		if msg.err != nil {
			a.setError("could not post story: " + msg.err.Error())
			return a, a.openForm(ScreenSubmit)
		}
		a.screen = ScreenFeed
		a.syncList()
		a.setInfo("posted " + msg.story.Title)
		return a, nil

	case storyDeletedMsg:
		a.loading = false
		if msg.err != nil {
			a.setError("could not delete story: " + msg.err.Error())
			return a, nil
		}
		a.syncList()
		a.setInfo("story deleted")
		return a, nil

	case favoriteToggledMsg:
		return a.handleFavoriteToggled(msg)

	default:
		if a.form != nil {
			return a.updateForm(msg)
		}
	}

	return a, nil
}

func (a *App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "up", "k":
		a.list.CursorUp()
		return a, nil
	case "down", "j":
		a.list.CursorDown()
		return a, nil
	case "1":
		a.switchScreen(ScreenFeed)
		return a, nil
	case "2":
		if a.requireLogin() {
			a.switchScreen(ScreenMyStories)
		}
		return a, nil
	case "3":
		if a.requireLogin() {
			a.switchScreen(ScreenFavorites)
		}
		return a, nil
	case "4":
		if a.requireLogin() {
			a.switchScreen(ScreenProfile)
		}
		return a, nil
	case "g":
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.loadFeed())
	case "l":
		if !a.sess.Anonymous() {
			a.setInfo("already logged in as " + a.sess.User.Username)
			return a, nil
		}
		return a, a.openForm(ScreenLogin)
	case "u":
		if !a.sess.Anonymous() {
			a.setInfo("already logged in as " + a.sess.User.Username)
			return a, nil
		}
		return a, a.openForm(ScreenSignup)
	case "s":
		if a.requireLogin() {
			return a, a.openForm(ScreenSubmit)
		}
		return a, nil
	case "x":
		if a.sess.Anonymous() {
			return a, nil
		}
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.logOut())
	case "f":
		return a.toggleFavorite()
	case "d":
		return a.deleteSelected()
	}
	return a, nil
}

// toggleFavorite flips the star immediately and issues the server
// call. The command works on a snapshot of the user: the event loop
// keeps reading the session while the request is in flight, so the
// shared user must only ever be written here and in
// handleFavoriteToggled, both on the update thread.
func (a *App) toggleFavorite() (tea.Model, tea.Cmd) {
	if !a.requireLogin() {
		return a, nil
	}
	story, ok := a.list.Selected()
	if !ok {
		return a, nil
	}

	user := a.sess.User
	marked := !user.IsFavorite(story.StoryID)
	if marked {
		user.AddFavorite(story)
	} else {
		user.RemoveFavorite(story.StoryID)
	}
	a.syncList()

	snapshot := *user
	return a, func() tea.Msg {
		var err error
		if marked {
			err = a.stories.Favorite(context.Background(), &snapshot, story.StoryID)
		} else {
			err = a.stories.Unfavorite(context.Background(), &snapshot, story.StoryID)
		}
		if err != nil {
			return favoriteToggledMsg{id: story.StoryID, marked: marked, err: err}
		}
		return favoriteToggledMsg{
			id:         story.StoryID,
			marked:     marked,
			favorites:  snapshot.Favorites,
			ownStories: snapshot.OwnStories,
		}
	}
}

func (a *App) handleFavoriteToggled(msg favoriteToggledMsg) (tea.Model, tea.Cmd) {
	user := a.sess.User
	switch {
	case msg.err != nil:
		// Revert the optimistic flip.
		if user != nil {
			if msg.marked {
				user.RemoveFavorite(msg.id)
			} else if story, ok := a.sess.Stories.ByID(msg.id); ok {
				user.AddFavorite(story)
			}
		}
		a.setError("could not update favorite: " + msg.err.Error())
	case user != nil:
		// Settle on the lists the profile re-fetch brought back.
		user.ReplaceStories(msg.favorites, msg.ownStories)
	}
	a.syncList()
	return a, nil
}

func (a *App) deleteSelected() (tea.Model, tea.Cmd) {
	if a.screen != ScreenMyStories {
		return a, nil
	}
	story, ok := a.list.Selected()
	if !ok {
		return a, nil
	}

	a.loading = true
	list, user := a.sess.Stories, a.sess.User
	return a, tea.Batch(a.spin.Tick, func() tea.Msg {
		err := a.stories.Delete(context.Background(), list, user, story.StoryID)
		return storyDeletedMsg{id: story.StoryID, err: err}
	})
}

func (a *App) handleSessionResumed(msg sessionResumedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, api.ErrUnauthorized) {
			// Stale credentials: drop them and continue anonymous.
			a.setError("saved session expired, please log in again")
			return a, tea.Batch(a.clearCreds(), a.loadFeed())
		}
		// A transport failure says nothing about the credentials;
		// keep them for the next start and continue anonymous.
		a.setError("could not resume the saved session: " + msg.err.Error())
		return a, a.loadFeed()
	}
	if msg.user != nil {
		a.sess.User = msg.user
		a.setInfo("logged in as " + msg.user.Username)
	}
	return a, a.loadFeed()
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateAborted:
		a.form = nil
		a.screen = ScreenFeed
		a.syncList()
		return a, nil
	case huh.StateCompleted:
		return a.submitForm()
	}

	return a, cmd
}

func (a *App) submitForm() (tea.Model, tea.Cmd) {
	screen := a.screen
	a.form = nil
	a.loading = true

	switch screen {
	case ScreenLogin:
		v := a.loginVals
		return a, tea.Batch(a.spin.Tick, func() tea.Msg {
			user, err := a.auth.LogIn(context.Background(), v.Username, v.Password)
			return loggedInMsg{user: user, err: err}
		})
	case ScreenSignup:
		v := a.signupVals
		return a, tea.Batch(a.spin.Tick, func() tea.Msg {
			user, err := a.auth.SignUp(context.Background(), v.Username, v.Password, v.Name)
			return signedUpMsg{user: user, err: err}
		})
	case ScreenSubmit:
		v := a.submitVals
		list, user := a.sess.Stories, a.sess.User
		return a, tea.Batch(a.spin.Tick, func() tea.Msg {
			story, err := a.stories.Add(context.Background(), list, user, models.StoryDraft{
				Author: v.Author,
				Title:  v.Title,
				URL:    v.URL,
			})
			return storyPostedMsg{story: story, err: err}
		})
	}

	a.loading = false
	return a, nil
}

// openForm switches to a form screen with fresh values.
func (a *App) openForm(screen Screen) tea.Cmd {
	a.screen = screen
	switch screen {
	case ScreenLogin:
		a.loginVals = forms.LoginValues{}
		a.form = forms.Login(&a.loginVals)
	case ScreenSignup:
		a.signupVals = forms.SignupValues{}
		a.form = forms.Signup(&a.signupVals)
	case ScreenSubmit:
		a.submitVals = forms.SubmitValues{}
		a.form = forms.Submit(&a.submitVals)
	}
	return a.form.Init()
}

func (a *App) switchScreen(screen Screen) {
	a.screen = screen
	a.status = ""
	a.syncList()
}

// requireLogin gates an action on a live login, with a visible hint.
func (a *App) requireLogin() bool {
	if a.sess.User.LoggedIn() {
		return true
	}
	a.setError("log in first ([l] log in, [u] sign up)")
	return false
}

// syncList points the list component at the stories of the active
// screen. Call after every session mutation.
func (a *App) syncList() {
	a.list.SetUser(a.sess.User)
	a.list.ShowDelete(a.screen == ScreenMyStories)

	switch {
	case a.screen == ScreenMyStories && !a.sess.Anonymous():
		a.list.SetStories(a.sess.User.OwnStories)
	case a.screen == ScreenFavorites && !a.sess.Anonymous():
		a.list.SetStories(a.sess.User.Favorites)
	default:
		if a.sess.Stories != nil {
			a.list.SetStories(a.sess.Stories.Stories)
		}
	}
}

func (a *App) setError(text string) {
	a.status = text
	a.statusErr = true
}

func (a *App) setInfo(text string) {
	a.status = text
	a.statusErr = false
}

// Commands

func (a *App) resumeSession() tea.Cmd {
	return func() tea.Msg {
		user, err := a.auth.Resume(context.Background())
		return sessionResumedMsg{user: user, err: err}
	}
}

func (a *App) loadFeed() tea.Cmd {
	return func() tea.Msg {
		list, err := a.stories.List(context.Background())
		return feedLoadedMsg{list: list, err: err}
	}
}

func (a *App) logOut() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: a.auth.LogOut(context.Background())}
	}
}

// clearCreds drops saved credentials without touching the session.
func (a *App) clearCreds() tea.Cmd {
	return func() tea.Msg {
		_ = a.auth.LogOut(context.Background())
		return nil
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.viewHeader())
	b.WriteString("\n\n")

	switch {
	case a.form != nil:
		b.WriteString(a.form.View())
	case a.loading:
		b.WriteString(a.spin.View() + " loading...")
	case a.screen == ScreenProfile:
		b.WriteString(a.viewProfile())
	default:
		b.WriteString(a.list.View())
	}

	b.WriteString("\n")
	b.WriteString(a.viewFooter())
	return b.String()
}

func (a *App) viewHeader() string {
	title := styles.Title.Render("Hack or Snooze")

	who := "anonymous"
	if !a.sess.Anonymous() {
		who = a.sess.User.Username
	}
	label := screenTitle(a.screen)

	return styles.Header.Render(fmt.Sprintf("%s  %s  %s",
		title,
		styles.StoryMeta.Render(label),
		styles.StoryMeta.Render("("+who+")")))
}

func (a *App) viewProfile() string {
	u := a.sess.User
	if !u.LoggedIn() {
		return styles.StoryMeta.Render("not logged in")
	}
	var b strings.Builder
	b.WriteString(styles.StoryTitle.Render("Profile") + "\n\n")
	b.WriteString(fmt.Sprintf("Name:            %s\n", u.Name))
	b.WriteString(fmt.Sprintf("Username:        %s\n", u.Username))
	b.WriteString(fmt.Sprintf("Account created: %s\n", accountDate(u.CreatedAt)))
	b.WriteString(fmt.Sprintf("Stories posted:  %d\n", len(u.OwnStories)))
	b.WriteString(fmt.Sprintf("Favorites:       %d\n", len(u.Favorites)))
	return b.String()
}

func (a *App) viewFooter() string {
	var keys []string
	if a.form != nil {
		keys = []string{"enter confirm", "esc cancel"}
	} else if a.sess.Anonymous() {
		keys = []string{"↑↓ move", "f favorite", "l log in", "u sign up", "g reload", "q quit"}
	} else {
		keys = []string{
			"↑↓ move", "f favorite", "s submit",
			"1 feed", "2 mine", "3 favorites", "4 profile",
			"x log out", "q quit",
		}
		if a.screen == ScreenMyStories {
			keys = append(keys, "d delete")
		}
	}

	var styled []string
	for _, k := range keys {
		parts := strings.SplitN(k, " ", 2)
		styled = append(styled, styles.Key.Render(parts[0])+" "+styles.Help.Render(parts[1]))
	}
	line := strings.Join(styled, "  ")

	if a.status != "" {
		st := styles.StatusInfo
		if a.statusErr {
			st = styles.StatusError
		}
		line += "\n" + st.Render(a.status)
	}
	return line
}

func (a *App) contentHeight() int {
	// header, blank line, footer help, status line
	h := a.height - 5
	if h < 1 {
		h = 10
	}
	return h
}

func screenTitle(s Screen) string {
	switch s {
	case ScreenMyStories:
		return "my stories"
	case ScreenFavorites:
		return "favorites"
	case ScreenProfile:
		return "profile"
	case ScreenLogin:
		return "log in"
	case ScreenSignup:
		return "sign up"
	case ScreenSubmit:
		return "submit"
	default:
		return "all stories"
	}
}

func accountDate(createdAt string) string {
	if len(createdAt) >= 10 {
		return createdAt[:10]
	}
	return createdAt
}

func loginFailureText(err error) string {
	if errors.Is(err, api.ErrUnauthorized) {
		return "wrong username or password"
	}
	return "login failed: " + err.Error()
}

func signupFailureText(err error) string {
	if errors.Is(err, api.ErrUnauthorized) {
		return "that username is taken"
	}
	return "signup failed: " + err.Error()
}

// Run starts the TUI in the alternate screen.
func Run(auth services.AuthService, stories services.StoryService) error {
	p := tea.NewProgram(New(auth, stories), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
