package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// Row is one record from an uploaded order export. Exports come from
// different systems, so there is no fixed schema: keys are whatever column
// labels the file carried, values are whatever the decoder produced
// (strings for CSV, strings or numbers for XLSX / jsonb round trips).
type Row map[string]interface{}

// --- JWT & Auth ---

type JwtClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
