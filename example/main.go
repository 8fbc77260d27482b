// Command example is a minimal application built on weblayer: a greeting
// page with an XSRF-protected form, a JSON endpoint, and a delegated
// static file server.
//
// Run it with:
//
//	WEBLAYER_SECRET_KEY=$(head -c 48 /dev/urandom | base64) go run ./example
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/weblayer"
	"github.com/dmitrymomot/weblayer/pkg/config"
	"github.com/dmitrymomot/weblayer/pkg/logger"
)

func main() {
	var cfg weblayer.Config
	config.MustLoad(&cfg)

	appLog := logger.New(logger.WithDevelopment("weblayer-example"))
	logger.SetAsDefault(appLog)

	app, err := weblayer.New(cfg, weblayer.WithAppLogger(appLog))
	if err != nil {
		log.Fatal(err)
	}

	hello := weblayer.Methods{
		"get": func(ctx weblayer.Context, args ...string) (weblayer.Result, error) {
			guard := app.Guard(ctx.ResponseWriter(), ctx.Request())
			page := fmt.Sprintf(`<h1>Hello world</h1>
<form method="POST" action="/">
  %s
  <input type="text" name="name" />
  <button>Greet</button>
</form>`, guard.InputTag())
			return weblayer.Text(page), nil
		},
		"post": func(ctx weblayer.Context, args ...string) (weblayer.Result, error) {
			name := ctx.Request().FormValue("name")
			if name == "" {
				return nil, weblayer.ErrBadRequest
			}
			return weblayer.Text(fmt.Sprintf("<h1>Hello %s</h1>", name)), nil
		},
	}

	status := weblayer.Methods{
		"get": func(ctx weblayer.Context, args ...string) (weblayer.Result, error) {
			return weblayer.JSON(map[string]string{"status": "ok"}), nil
		},
	}

	static := weblayer.Methods{
		"get": func(ctx weblayer.Context, args ...string) (weblayer.Result, error) {
			return weblayer.Delegate(http.StripPrefix("/static/", http.FileServer(http.Dir("./static")))), nil
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/", app.Handler(hello))
	r.Handle("/status", app.Handler(status))
	r.Handle("/static/*", app.Handler(static))

	appLog.Info("listening", logger.Component("example"))
	if err := http.ListenAndServe(":8080", r); err != nil {
		log.Fatal(err)
	}
}
