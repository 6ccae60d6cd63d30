// Package model defines the domain entities of the Varal dos Sonhos API.
//
// The model package contains the struct definitions shared across all layers:
// donors, letters, collection points, donations and events. Field names follow
// the public API vocabulary; the legacy record-store field names live solely in
// the repository layer.
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Letter struct {
//	    ID        string `json:"id"`
//	    ChildName string `json:"childName"`
//	    Wish      string `json:"wish"`
//	}
//
// Sensitive fields (the donor password hash) are tagged `json:"-"` and never
// leave the process.
package model
