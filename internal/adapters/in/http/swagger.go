package http

import (
	"burger/internal/generated/servers"

	"github.com/swaggo/swag"
)

// openAPIDoc serves the embedded OpenAPI document to echo-swagger.
type openAPIDoc struct{}

func (openAPIDoc) ReadDoc() string {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}
	doc, err := swagger.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(doc)
}

func init() {
	swag.Register(swag.Name, openAPIDoc{})
}
