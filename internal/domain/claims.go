package domain

import "github.com/golang-jwt/jwt/v5"

const RoleAdmin = "admin"

// Claims do token usado nas rotas administrativas (cron)
type Claims struct {
	Subject string `json:"sub_name"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}
