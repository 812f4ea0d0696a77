package backend

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

var accountTmpl = tmpl(`<h2>Account</h2>
	<p>Logged in as {{ .User.Name }}.</p>
	<p><a href="/logout">Logout</a></p>`)

func account(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {
	return accountTmpl.Execute(w, ctx)
}
