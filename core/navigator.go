package core

// A Navigator changes the current route of the client.
type Navigator interface {
	NavigateTo(path string)
}

// NavigatorFunc adapts a func to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) NavigateTo(path string) {
	f(path)
}
