package backend

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shelteraid/shelteraid/sqldb"
)

var ErrLogin = errors.New("wrong username or password")

var loginTmpl = tmpl(`<h2>Login</h2>
	<form method="post">
		<p>
			<label>E-Mail<br>
			<input type="text" name="email" value="{{ .Email }}" required autofocus></label>
		</p>
		<p>
			<label>Password<br>
			<input type="password" name="password" required></label>
		</p>
		<p>
			<button type="submit" name="login">Login</button>
		</p>
	</form>`)

type loginData struct {
	*context
	Email string
}

func login(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	if ctx.LoggedIn() {
		ctx.SeeOther("/account")
		return nil
	}

	var email string

	if req.Method == http.MethodPost {

		email = req.PostFormValue("email")
		password := req.PostFormValue("password")

		err := ctx.Login(email, password)
		switch {
		case err == nil:
			ctx.SeeOther("/account")
			return nil
		case errors.Is(err, sqldb.ErrAuth):
			ctx.Danger(ErrLogin)
			// keep POST data for email field
		default:
			return err
		}
	}

	return loginTmpl.Execute(w, &loginData{
		context: ctx,
		Email:   email,
	})
}
