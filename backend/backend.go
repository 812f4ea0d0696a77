// Package backend serves the pages behind the login control of the landing page.
package backend

import (
	"html/template"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shelteraid/shelteraid/core"
	"go.uber.org/zap"
)

type context struct {
	*core.Request
}

func middleware(site *core.Site, requireLoggedIn bool, f func(http.ResponseWriter, *http.Request, *context, httprouter.Params) error) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {

		var ctx = &context{
			Request: site.NewRequest(w, req),
		}
		defer ctx.Cleanup()

		if requireLoggedIn && !ctx.LoggedIn() {
			ctx.SeeOther("/login")
			return
		}

		if err := f(w, req, ctx, params); err != nil {
			site.Log.Warn("backend", zap.String("path", req.URL.Path), zap.Error(err))
			// probably no template has been executed, so execute error template
			errorTmpl.Execute(w, struct {
				*context
				Err error
			}{
				context: ctx,
				Err:     err,
			})
		}
	}
}

var errorTmpl = tmpl(`
	<div class="alert alert-danger" role="alert">
		{{ .Err }}
	</div>`)

// NewBackendRouter returns a router for the login page and the account pages.
func NewBackendRouter(site *core.Site) *httprouter.Router {

	var router = httprouter.New()

	var GETAndPOST = func(path string, handle httprouter.Handle) {
		router.GET(path, handle)
		router.POST(path, handle)
	}

	// public
	GETAndPOST("/login", middleware(site, false, login))

	// private
	router.GET("/account", middleware(site, true, account))
	router.GET("/logout", middleware(site, true, logout))

	return router
}

// Paths lists the paths which NewBackendRouter handles.
var Paths = []string{"/account", "/login", "/logout"}

func tmpl(text string) *template.Template {
	t := template.Must(backendTmpl.Clone())
	t = template.Must(t.Parse(`{{ define "content" }}` + text + `{{ end }}`))
	return t
}

var backendTmpl = template.Must(template.New("backend").Parse(`<!DOCTYPE html>
<html lang="{{ .Lang }}">
	<head>
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1">
		<title>ShelterAID</title>
		<style>
			body {
				background-color: #103063;
				color: #fff;
				font-family: sans-serif;
			}
			main {
				max-width: 20rem;
				margin: 2rem auto;
			}
			.alert {
				padding: .5rem;
				border-radius: .2rem;
			}
			.alert-danger {
				background-color: #a33;
			}
			.alert-success {
				background-color: #3a3;
			}
		</style>
	</head>
	<body>
		<main>
			<h1><a href="/">SHELTER<span class="text-green-500">AID</span></a></h1>
			{{ .RenderNotifications }}
			{{ template "content" . }}
		</main>
	</body>
</html>`))
