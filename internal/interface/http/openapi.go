package http

import (
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

var (
	openapiOnce sync.Once
	openapiDoc  *openapi3.T
)

func (a *API) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	openapiOnce.Do(func() { openapiDoc = buildOpenAPIDoc() })
	writeJSON(w, http.StatusOK, openapiDoc)
}

// buildOpenAPIDoc describes the catalog surface so the admin UI and API
// consumers get a browsable contract at /api/openapi.json.
func buildOpenAPIDoc() *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Product Catalog API",
			Description: "CRUD and paged listing for the product catalog.",
			Version:     "1.0.0",
		},
		Paths: &openapi3.Paths{},
	}

	productSchema := schemaRef(&openapi3.Schema{
		Type: &openapi3.Types{"object"},
		Properties: openapi3.Schemas{
			"id":          schemaRef(&openapi3.Schema{Type: &openapi3.Types{"string"}, Format: "uuid"}),
			"name":        schemaRef(&openapi3.Schema{Type: &openapi3.Types{"string"}, MaxLength: uint64Ptr(100)}),
			"description": schemaRef(&openapi3.Schema{Type: &openapi3.Types{"string"}, MaxLength: uint64Ptr(500)}),
			"price":       schemaRef(&openapi3.Schema{Type: &openapi3.Types{"number"}, Min: float64Ptr(0)}),
			"stock":       schemaRef(&openapi3.Schema{Type: &openapi3.Types{"integer"}, Min: float64Ptr(0)}),
			"create_time": schemaRef(&openapi3.Schema{Type: &openapi3.Types{"string"}, Format: "date-time"}),
			"update_time": schemaRef(&openapi3.Schema{Type: &openapi3.Types{"string"}, Format: "date-time"}),
			"is_active":   schemaRef(&openapi3.Schema{Type: &openapi3.Types{"boolean"}}),
		},
	})

	productList := schemaRef(&openapi3.Schema{Type: &openapi3.Types{"array"}, Items: productSchema})

	pagedSchema := schemaRef(&openapi3.Schema{
		Type: &openapi3.Types{"object"},
		Properties: openapi3.Schemas{
			"page_number":  schemaRef(&openapi3.Schema{Type: &openapi3.Types{"integer"}}),
			"page_size":    schemaRef(&openapi3.Schema{Type: &openapi3.Types{"integer"}}),
			"total_count":  schemaRef(&openapi3.Schema{Type: &openapi3.Types{"integer"}}),
			"total_pages":  schemaRef(&openapi3.Schema{Type: &openapi3.Types{"integer"}}),
			"has_previous": schemaRef(&openapi3.Schema{Type: &openapi3.Types{"boolean"}}),
			"has_next":     schemaRef(&openapi3.Schema{Type: &openapi3.Types{"boolean"}}),
			"items":        productList,
		},
	})

	idParam := openapi3.Parameters{pathParam("id", "uuid")}

	doc.Paths.Set("/api/products", &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "listProducts",
			Summary:     "List all products",
			Responses:   jsonResponses("200", "All products", productList),
		},
		Post: &openapi3.Operation{
			OperationID: "createProduct",
			Summary:     "Create a product",
			RequestBody: jsonRequestBody(productSchema),
			Responses:   jsonResponses("201", "Created product", productSchema),
		},
	})

	doc.Paths.Set("/api/products/paged", &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "listProductsPaged",
			Summary:     "List products with paging, search, filters and sorting",
			Parameters: openapi3.Parameters{
				queryParam("PageNumber", "integer"),
				queryParam("PageSize", "integer"),
				queryParam("SearchTerm", "string"),
				queryParam("SortBy", "string"),
				queryParam("SortOrder", "string"),
				queryParam("IsActive", "boolean"),
				queryParam("MinPrice", "number"),
				queryParam("MaxPrice", "number"),
			},
			Responses: jsonResponses("200", "One page of products", pagedSchema),
		},
	})

	doc.Paths.Set("/api/products/{id}", &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "getProduct",
			Summary:     "Get a product by id",
			Parameters:  idParam,
			Responses:   jsonResponses("200", "The product", productSchema),
		},
		Put: &openapi3.Operation{
			OperationID: "updateProduct",
			Summary:     "Replace a product's editable fields",
			Parameters:  idParam,
			RequestBody: jsonRequestBody(productSchema),
			Responses:   jsonResponses("200", "Updated product", productSchema),
		},
		Delete: &openapi3.Operation{
			OperationID: "deleteProduct",
			Summary:     "Delete a product",
			Parameters:  idParam,
			Responses:   jsonResponses("204", "Deleted", nil),
		},
	})

	return doc
}

func schemaRef(s *openapi3.Schema) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: s}
}

func queryParam(name, typ string) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{Value: &openapi3.Parameter{
		Name:   name,
		In:     openapi3.ParameterInQuery,
		Schema: schemaRef(&openapi3.Schema{Type: &openapi3.Types{typ}}),
	}}
}

func pathParam(name, format string) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{Value: &openapi3.Parameter{
		Name:     name,
		In:       openapi3.ParameterInPath,
		Required: true,
		Schema:   schemaRef(&openapi3.Schema{Type: &openapi3.Types{"string"}, Format: format}),
	}}
}

func jsonRequestBody(schema *openapi3.SchemaRef) *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{Value: &openapi3.RequestBody{
		Required: true,
		Content: openapi3.Content{
			"application/json": &openapi3.MediaType{Schema: schema},
		},
	}}
}

func jsonResponses(status, description string, schema *openapi3.SchemaRef) *openapi3.Responses {
	response := &openapi3.Response{Description: &description}
	if schema != nil {
		response.Content = openapi3.Content{
			"application/json": &openapi3.MediaType{Schema: schema},
		}
	}
	responses := &openapi3.Responses{}
	responses.Set(status, &openapi3.ResponseRef{Value: response})
	return responses
}

func uint64Ptr(v uint64) *uint64 { return &v }

func float64Ptr(v float64) *float64 { return &v }
