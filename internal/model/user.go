package model

import "time"

// User represents a registered patient account. The username is the
// natural key; no surrogate identifier exists.
type User struct {
	Username     string    `json:"username" db:"username"`
	Password     string    `json:"password,omitempty" db:"-"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	FatherName   string    `json:"father_name" db:"father_name"`
	DOB          time.Time `json:"dob" db:"dob"`
	Email        string    `json:"email" db:"email"`
	City         string    `json:"city" db:"city"`
	State        string    `json:"state" db:"state"`
	Country      string    `json:"country" db:"country"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RegisterRequest represents user registration parameters.
type RegisterRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	FullName   string `json:"full_name" binding:"required"`
	FatherName string `json:"father_name"`
	DOB        string `json:"dob" binding:"required"`
	Email      string `json:"email" binding:"required"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
}

// LoginRequest represents login parameters. The captcha fields refer
// to a previously issued challenge.
type LoginRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required"`
	CaptchaID     string `json:"captcha_id" binding:"required"`
	CaptchaAnswer string `json:"captcha_answer" binding:"required"`
}

// TokenResponse carries the session token issued on login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
