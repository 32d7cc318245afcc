package api

import _ "embed"

// OpenAPI describes the inbound HTTP surface. It is served as is and used to
// validate incoming requests.
//
//go:embed openapi.json
var OpenAPI []byte
