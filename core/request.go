package core

import (
	"encoding/gob"
	"fmt"
	"html/template"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type Notification struct {
	Message string
	Style   string
}

func init() {
	gob.Register([]Notification{}) // required for storing Notifications in a session
}

var langMatcher = language.NewMatcher([]language.Tag{
	language.AmericanEnglish, // default
	language.German,
})

// A Request is created by Site.NewRequest.
type Request struct {
	site *Site // unexported, so it can't be accessed in templates
	User DBUser

	// http
	writer  http.ResponseWriter
	request *http.Request

	// robustness
	statusWritten bool

	language language.Tag
}

// NewRequest creates a Request with the given http.ResponseWriter and http.Request.
// If a user is logged in, it sets Request.User.
func (s *Site) NewRequest(w http.ResponseWriter, httpreq *http.Request) *Request {

	var req = &Request{
		site:    s,
		writer:  w,
		request: httpreq,
	}

	req.language, _ = language.MatchStrings(langMatcher, httpreq.Header.Get("Accept-Language"))

	if uid := s.SessionManager.GetInt(httpreq.Context(), "uid"); uid != 0 {
		u, err := s.UserDB.GetUser(uid)
		if u != nil && err == nil {
			req.User = u
		} else {
			s.Log.Debug("dropping session user", zap.Int("uid", uid), zap.Error(err))
		}
	}

	return req
}

// Danger adds a "danger" notification to the session.
func (req *Request) Danger(err error) {
	req.addNotification(err.Error(), "danger")
}

// Success adds a "success" notification to the session.
func (req *Request) Success(format string, args ...interface{}) {
	req.addNotification(fmt.Sprintf(format, args...), "success")
}

// style should be a bootstrap alert style without the leading "alert-"
func (req *Request) addNotification(message, style string) {
	notifications, _ := req.site.SessionManager.Get(req.request.Context(), "notifications").([]Notification)
	notifications = append(notifications, Notification{message, style})
	req.site.SessionManager.Put(req.request.Context(), "notifications", notifications)
}

// RenderNotifications removes all notifications from the session
// and renders them into an HTML string.
// If the HTTP status had already been written, it does nothing.
func (req *Request) RenderNotifications() template.HTML {
	var r string
	if !req.statusWritten {
		notifications, _ := req.site.SessionManager.Pop(req.request.Context(), "notifications").([]Notification)
		for _, n := range notifications {
			r += `<div class="alert alert-` + n.Style + ` mt-3" role="alert">` + template.HTMLEscapeString(n.Message) + `</div>`
		}
	}
	return template.HTML(r)
}

// Cleanup destroys the session (which means re-setting the cookie with zero lifetime) if the session has been modified and is empty now.
func (req *Request) Cleanup() {
	sessMan := req.site.SessionManager
	if sessMan.Status(req.request.Context()) == scs.Modified && len(sessMan.Keys(req.request.Context())) == 0 {
		_ = sessMan.Destroy(req.request.Context())
	}
}

// SeeOther sets the HTTP header to redirect to an URL.
func (req *Request) SeeOther(format string, args ...interface{}) {
	if req.statusWritten {
		return
	}
	var url = fmt.Sprintf(format, args...)
	http.Redirect(req.writer, req.request, url, http.StatusSeeOther)
	req.statusWritten = true
}

// NavigateTo implements Navigator. Only the first navigation of a request takes effect.
func (req *Request) NavigateTo(path string) {
	req.SeeOther("%s", path)
}

// Login tries to log in a user. On success, the user id is stored in the session.
func (req *Request) Login(mail string, enteredPass string) error {
	if req.LoggedIn() {
		return nil
	}
	u, err := req.site.UserDB.LoginUser(mail, enteredPass)
	if err != nil {
		return err // is sqldb.ErrAuth if mail or enteredPass is wrong
	}
	// the privilege level changes, so the session token must change too
	if err := req.site.SessionManager.RenewToken(req.request.Context()); err != nil {
		return err
	}
	req.User = u
	req.Success("Welcome %s!", req.User.Name())
	req.site.SessionManager.Put(req.request.Context(), "uid", req.User.ID())
	req.site.Log.Info("login", zap.String("user", u.Name()))
	return nil
}

func (req *Request) LoggedIn() bool {
	return req.User != nil
}

// Logout removes the user id from the session and calls req.Cleanup().
func (req *Request) Logout() {
	if req.LoggedIn() {
		req.site.SessionManager.Remove(req.request.Context(), "uid")
		req.site.Log.Info("logout", zap.String("user", req.User.Name()))
		req.User = nil
	}
	req.Cleanup()
}

// Lang returns the base language which matches the Accept-Language header best.
func (req *Request) Lang() string {
	b, _ := req.language.Base()
	return b.String()
}
