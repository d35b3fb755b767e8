// Package api ships the HTTP contract served under /swagger.
package api

import _ "embed"

//go:embed openapi.yaml
var OpenAPISpec []byte
