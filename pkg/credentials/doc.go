// Package credentials retrieves stored credentials for remote URLs by
// invoking git credential helpers.
//
// A helper is an external program named by a `credential.helper` git
// configuration value. This package resolves that command string to an
// executable invocation, speaks the `get` half of the line-oriented
// key=value protocol over the helper's standard streams, and returns
// the username/password pair the helper produced. The `store` and
// `erase` verbs are intentionally not implemented.
//
// See https://git-scm.com/book/en/v2/Git-Tools-Credential-Storage.
package credentials
