package dto

// PageResponse metadatos de página en respuestas.
// Total es la cantidad de filas que cumplen el filtro, no el tamaño de la página.
type PageResponse struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
