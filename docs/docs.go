// Package docs registra o documento OpenAPI servido em /docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/upload": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["upload"],
                "summary": "Upload de dataset (CSV, XLSX ou XLS)",
                "parameters": [
                    {"type": "file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.UploadResult"}},
                    "400": {"description": "Nenhum arquivo foi enviado", "schema": {"$ref": "#/definitions/apiErrors.APIError"}},
                    "413": {"description": "Arquivo maior que o permitido", "schema": {"$ref": "#/definitions/apiErrors.APIError"}},
                    "422": {"description": "Formato inválido, arquivo ilegível ou colunas ausentes", "schema": {"$ref": "#/definitions/apiErrors.APIError"}}
                }
            }
        },
        "/dataset/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dataset"],
                "summary": "Status do dataset carregado",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DatasetStatus"}}}
            }
        },
        "/dataset/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dataset"],
                "summary": "Uploads mais recentes",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query", "minimum": 1, "maximum": 100}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reports/sales-summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Resumo de vendas",
                "parameters": [
                    {"type": "string", "format": "date", "name": "start_date", "in": "query"},
                    {"type": "string", "format": "date", "name": "end_date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SalesSummary"}},
                    "400": {"description": "Nenhum dataset carregado ou data inválida", "schema": {"$ref": "#/definitions/apiErrors.APIError"}}
                }
            }
        },
        "/reports/financial-metrics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Métricas financeiras",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.FinancialMetrics"}},
                    "400": {"description": "Nenhum dataset carregado", "schema": {"$ref": "#/definitions/apiErrors.APIError"}}
                }
            }
        },
        "/reports/product-analysis": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Análise de produtos",
                "parameters": [
                    {"enum": ["quantidade", "total_arrecadado", "nome"], "type": "string", "default": "total_arrecadado", "name": "sort_by", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "default": "desc", "name": "order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.ProductSales"}}},
                    "400": {"description": "Nenhum dataset carregado ou parâmetro inválido", "schema": {"$ref": "#/definitions/apiErrors.APIError"}},
                    "422": {"description": "Colunas ausentes", "schema": {"$ref": "#/definitions/apiErrors.APIError"}}
                }
            }
        },
        "/reports/regional-performance": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Performance por região",
                "parameters": [
                    {"type": "string", "name": "estado", "in": "query", "description": "UF do cliente"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/domain.RegionStats"}}},
                    "400": {"description": "Nenhum dataset carregado", "schema": {"$ref": "#/definitions/apiErrors.APIError"}},
                    "422": {"description": "Colunas ausentes", "schema": {"$ref": "#/definitions/apiErrors.APIError"}}
                }
            }
        },
        "/reports/customer-profile": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Perfil de clientes",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Nenhum dataset carregado", "schema": {"$ref": "#/definitions/apiErrors.APIError"}},
                    "422": {"description": "Colunas ausentes", "schema": {"$ref": "#/definitions/apiErrors.APIError"}}
                }
            }
        },
        "/reports/download": {
            "get": {
                "produces": ["application/json", "application/pdf"],
                "tags": ["reports"],
                "summary": "Download do relatório consolidado",
                "parameters": [
                    {"enum": ["json", "pdf"], "type": "string", "default": "json", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Arquivo report.json ou report.pdf"},
                    "400": {"description": "Nenhum dataset carregado ou formato inválido", "schema": {"$ref": "#/definitions/apiErrors.APIError"}}
                }
            }
        }
    },
    "definitions": {
        "apiErrors.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {}
            }
        },
        "domain.UploadResult": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "sucesso"},
                "linhas_processadas": {"type": "integer"},
                "arquivo_original": {"type": "string"},
                "dataset_id": {"type": "string"}
            }
        },
        "domain.DatasetStatus": {
            "type": "object",
            "properties": {
                "loaded": {"type": "boolean"},
                "message": {"type": "string"},
                "dataset_id": {"type": "string"},
                "arquivo_original": {"type": "string"},
                "uploaded_at": {"type": "string", "format": "date-time"},
                "linhas_processadas": {"type": "integer"},
                "colunas": {"type": "array", "items": {"type": "string"}},
                "fingerprint": {"type": "string"}
            }
        },
        "domain.SalesSummary": {
            "type": "object",
            "properties": {
                "total_vendas": {"type": "number"},
                "numero_transacoes": {"type": "integer"},
                "media_por_transacao": {"type": "number"}
            }
        },
        "domain.FinancialMetrics": {
            "type": "object",
            "properties": {
                "receita_liquida": {"type": "number"},
                "lucro_bruto": {"type": "number"},
                "custo_total": {"type": "number"}
            }
        },
        "domain.ProductSales": {
            "type": "object",
            "properties": {
                "nome_produto": {"type": "string"},
                "quantidade_vendida": {"type": "integer"},
                "total_arrecadado": {"type": "number"}
            }
        },
        "domain.RegionStats": {
            "type": "object",
            "properties": {
                "total_vendas": {"type": "number"},
                "numero_transacoes": {"type": "integer"},
                "media_por_transacao": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Hanami Analytics API",
	Description:      "API para processamento de CSV/XLSX e geração de relatórios analíticos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
