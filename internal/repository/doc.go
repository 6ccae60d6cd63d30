// Package repository is the schema-mapping layer between the domain models
// and the record store.
//
// The backing store is a legacy base whose collections and field names are in
// Portuguese and have accumulated spelling variants over time (nome_evento vs
// nome, imagem_evento vs Imagem_evento). Every mapping between an API-facing
// model field and a store field is defined here and nowhere else, so handlers
// and services never see a store field name.
//
// Repositories return (nil, nil) for lookups that match no record; callers
// decide whether absence is an error.
package repository
