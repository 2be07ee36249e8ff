// Package browser holds in-memory stand-ins for the browser engine objects the
// toolbar, omnibox and tile surfaces observe: overview mode, the default
// search engine, tabs and tab models.
//
// Every collaborator delivers callbacks synchronously on the caller's
// goroutine, which must be the UI thread.
package browser
