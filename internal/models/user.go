package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// UserRole is the platform role of an account
type UserRole string

const (
	RoleUser   UserRole = "USER"
	RoleExpert UserRole = "EXPERT"
	RoleAdmin  UserRole = "ADMIN"
)

type User struct {
	gorm.Model `json:"-"`
	ID         uint     `json:"id" gorm:"primaryKey"`
	Name       string   `json:"name"`
	Email      string   `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Password   string   `json:"-"`                        // Store hashed password, ignore for JSON serialization
	Role       UserRole `json:"role" gorm:"size:10;default:'USER'"`
	IsDelete   bool     `json:"is_delete" gorm:"default:false;index"` // Soft-deleted users cannot sign in
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint     `json:"user_id"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}
