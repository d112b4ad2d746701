package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Tags
const (
	TagPid               = "pid"
	TagLatency           = "latency"
	TagIP                = "ip"
	TagMethod            = "method"
	TagPath              = "path"
	TagQueryStringParams = "query"
	TagStatus            = "status"
	TagBody              = "body"
	TagResBody           = "resBody"
	TagRequestID         = "requestId"
	TagUserEmail         = "userEmail"
)

// FuncTag значение поля лога для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// getFuncTagMap только теги из конфигурации
func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(c *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(c *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagIP: func(c *fiber.Ctx, d *data) interface{} {
			return c.IP()
		},
		TagMethod: func(c *fiber.Ctx, d *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, d *data) interface{} {
			return c.Path()
		},
		TagQueryStringParams: func(c *fiber.Ctx, d *data) interface{} {
			return c.Request().URI().QueryArgs().String()
		},
		TagStatus: func(c *fiber.Ctx, d *data) interface{} {
			return c.Response().StatusCode()
		},
		TagBody: func(c *fiber.Ctx, d *data) interface{} {
			return string(c.Body())
		},
		TagResBody: func(c *fiber.Ctx, d *data) interface{} {
			return string(c.Response().Body())
		},
		TagRequestID: func(c *fiber.Ctx, d *data) interface{} {
			return c.Params("rid")
		},
		TagUserEmail: func(c *fiber.Ctx, d *data) interface{} {
			if email, ok := c.Locals(LocalsUserEmail).(string); ok {
				return email
			}
			return ""
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}
