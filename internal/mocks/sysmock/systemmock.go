// Package sysmock mocks the credentials.System collaborator.
package sysmock

//go:generate go tool mockgen -typed -package sysmock -destination ./systemmock.gen.go github.com/act3-ai/gitcreds/pkg/credentials System
