package http

import "net/http"

// Client is the part of *http.Client used to reach the election backend.
//
//go:generate mockery --name=Client
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}
