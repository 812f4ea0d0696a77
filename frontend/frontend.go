// Package frontend serves the landing page and its images.
package frontend

import (
	"bytes"
	"net/http"
	"sync"

	"github.com/julienschmidt/httprouter"
	"github.com/shelteraid/shelteraid/core"
	"github.com/shelteraid/shelteraid/page"
	"github.com/shelteraid/shelteraid/static"
	"go.uber.org/zap"
)

type frontend struct {
	site    *core.Site
	home    *page.Home
	waiting *sync.WaitGroup
}

// NewRouter returns a router for the landing page. If waiting is not nil, it tracks running page handlers.
func NewRouter(site *core.Site, home *page.Home, waiting *sync.WaitGroup) *httprouter.Router {

	var f = &frontend{
		site:    site,
		home:    home,
		waiting: waiting,
	}

	var router = httprouter.New()
	router.GET(page.HomePath, f.track(f.view))
	router.HEAD(page.HomePath, f.track(f.view))
	router.POST(page.HomePath, f.track(f.activate))

	var images = http.FileServer(http.FS(static.FS))
	for _, path := range static.Images {
		router.Handler(http.MethodGet, path, images)
	}

	return router
}

func (f *frontend) track(handle httprouter.Handle) httprouter.Handle {
	if f.waiting == nil {
		return handle
	}
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {
		f.waiting.Add(1)
		defer f.waiting.Done()
		handle(w, req, params)
	}
}

func (f *frontend) view(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {

	// render into a buffer, so a failure can still become a 500
	var buf = &bytes.Buffer{}
	if err := f.home.Render(buf); err != nil {
		f.site.Log.Error("rendering home page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		f.site.Log.Debug("writing home page", zap.Error(err))
	}
}

func (f *frontend) activate(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {

	if req.PostFormValue("action") != page.LoginAction {
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	var request = f.site.NewRequest(w, req)
	defer request.Cleanup()

	f.home.OnLoginRequested(request)
}
