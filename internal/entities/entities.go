// Package entities wires every managed backend resource into a
// console.Registry.
package entities

import (
	"admin-console/config"
	"admin-console/internal/category"
	"admin-console/internal/console"
	"admin-console/internal/console/repository/remote"
	"admin-console/internal/console/usecase"
	"admin-console/internal/loginlog"
	"admin-console/internal/returnreason"
	"admin-console/internal/subject"
	"admin-console/pkg/log"
)

// Add registers entity. Every page built for it shares one repository; the
// commands are bound to the notifier of whoever opens the page.
func Add[T console.Record](reg *console.Registry, c *remote.Client, entity console.Entity[T], l log.Logger) {
	repo := remote.New(c, entity, l)
	reg.Register(entity.Info(), func(n console.Notifier) console.PageHandle {
		cmds := usecase.New[T](entity.Name, repo, n, l)
		return console.NewPage[T](entity, repo, cmds, l)
	})
}

// Overrides replaces default endpoints per entity name. Empty fields keep
// the default.
type Overrides map[string]console.Endpoints

func (o Overrides) apply(name string, def console.Endpoints) console.Endpoints {
	e, ok := o[name]
	if !ok {
		return def
	}
	if e.Query != "" {
		def.Query = e.Query
	}
	if e.Create != "" {
		def.Create = e.Create
	}
	if e.Update != "" {
		def.Update = e.Update
	}
	if e.Delete != "" {
		def.Delete = e.Delete
	}
	return def
}

// NewRegistry registers the category, login log, recommend subject and
// return reason pages.
func NewRegistry(c *remote.Client, o Overrides, l log.Logger) *console.Registry {
	reg := console.NewRegistry()
	Add(reg, c, category.Entity(o.apply(category.Name, category.DefaultEndpoints)), l)
	Add(reg, c, loginlog.Entity(o.apply(loginlog.Name, loginlog.DefaultEndpoints)), l)
	Add(reg, c, subject.Entity(o.apply(subject.Name, subject.DefaultEndpoints)), l)
	Add(reg, c, returnreason.Entity(o.apply(returnreason.Name, returnreason.DefaultEndpoints)), l)
	return reg
}

// ClientConfig maps the backend section of the service config.
func ClientConfig(b config.BackendConfig) remote.ClientConfig {
	return remote.ClientConfig{
		BaseURL:         b.URL,
		Timeout:         b.Timeout,
		AccessToken:     b.AccessToken,
		TokenURL:        b.TokenURL,
		ClientID:        b.ClientID,
		ClientSecret:    b.ClientSecret,
		Scopes:          b.Scopes,
		RateLimitPerSec: b.RateLimitPerSec,
		RateBurst:       b.RateBurst,
	}
}
