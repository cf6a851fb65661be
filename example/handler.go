package main

import (
	"strconv"

	"github.com/zenithpersona/persona/persona"
)

func pickHandler(cfg config) persona.Handler {
	if cfg.Handler == "echo" {
		return echoHandler(cfg.ServerName)
	}
	return persona.DefaultHandler(cfg.ServerName)
}

// echoHandler answers with the request target; malformed input falls back to
// the fixed body.
func echoHandler(name string) persona.Handler {
	fallback := persona.DefaultHandler(name)
	return func(req *persona.Request, parseErr error) *persona.Response {
		if parseErr != nil {
			return fallback(req, parseErr)
		}
		body := []byte("target: " + req.Target + "\n")
		return persona.NewMessageBuilder().
			Header(persona.Header{Name: "Server", Value: name}).
			Header(persona.Header{Name: "Content-Type", Value: "text/plain"}).
			Header(persona.Header{Name: "Content-Length", Value: strconv.Itoa(len(body))}).
			Body(body).
			Build()
	}
}
