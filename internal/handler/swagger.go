package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dafibh/budgetly/budgetly-backend/docs"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// OpenAPI3Spec represents an OpenAPI 3.0 spec structure
type OpenAPI3Spec struct {
	OpenAPI    string                 `json:"openapi"`
	Info       map[string]interface{} `json:"info"`
	Servers    []Server               `json:"servers"`
	Paths      map[string]interface{} `json:"paths"`
	Components map[string]interface{} `json:"components,omitempty"`
}

// Server represents an OpenAPI 3.0 server
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// schemaFields are the Swagger 2.0 parameter keys that move under "schema" in OpenAPI 3.0
var schemaFields = []string{"type", "format", "enum", "default", "minimum", "maximum", "items"}

// convertSwagger2 rewrites $ref targets from #/definitions/ to
// #/components/schemas/ and nests non-body parameter types under "schema"
func convertSwagger2(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		_, hasIn := v["in"]
		_, hasName := v["name"]
		if hasIn && hasName && v["in"] != "body" {
			return convertParameter(v)
		}

		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			if ref, ok := value.(string); ok && key == "$ref" {
				result[key] = strings.Replace(ref, "#/definitions/", "#/components/schemas/", 1)
				continue
			}
			result[key] = convertSwagger2(value)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = convertSwagger2(item)
		}
		return result
	default:
		return data
	}
}

func convertParameter(param map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})
	for _, field := range []string{"name", "in", "description", "required"} {
		if val, ok := param[field]; ok {
			result[field] = val
		}
	}

	schema := make(map[string]interface{})
	for _, field := range schemaFields {
		if val, ok := param[field]; ok {
			schema[field] = convertSwagger2(val)
		}
	}
	if len(schema) > 0 {
		result["schema"] = schema
	}
	return result
}

// ServeOpenAPI3Spec serves the generated Swagger 2.0 document converted to
// OpenAPI 3.0, with the requesting host as the server
func ServeOpenAPI3Spec(c echo.Context) error {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return NewInternalError(c, "Failed to read swagger doc")
	}

	var swagger2 map[string]interface{}
	if err := json.Unmarshal([]byte(doc), &swagger2); err != nil {
		return NewInternalError(c, "Failed to parse swagger doc")
	}

	info, _ := swagger2["info"].(map[string]interface{})
	paths, _ := swagger2["paths"].(map[string]interface{})

	components := make(map[string]interface{})
	if definitions, ok := swagger2["definitions"].(map[string]interface{}); ok {
		components["schemas"] = convertSwagger2(definitions)
	}

	basePath, _ := swagger2["basePath"].(string)
	return c.JSON(http.StatusOK, OpenAPI3Spec{
		OpenAPI: "3.0.3",
		Info:    info,
		Servers: []Server{
			{URL: c.Scheme() + "://" + c.Request().Host + basePath, Description: "Current host"},
		},
		Paths:      convertSwagger2(paths).(map[string]interface{}),
		Components: components,
	})
}
