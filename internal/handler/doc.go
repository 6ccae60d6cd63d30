// Package handler exposes the HTTP surface of the Varal dos Sonhos API.
//
// Routing goes through a single route table (router.go): each Route binds a
// method and path — plus an optional "rota" query alias kept for clients that
// cannot reach path-based routes — to one handler. Exact path match wins over
// the alias; anything unresolved gets the fixed 404 envelope.
//
// All responses are pretty-printed UTF-8 JSON. Errors use one envelope shape,
// {"erro": ...}, with an additional "detalhe" field on internal errors only.
// Service errors are translated to HTTP responses in error_mapper.go and
// nowhere else.
package handler
