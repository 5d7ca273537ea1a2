// Package validator holds the registration predicates and the captcha
// code generator. All checks are pure; no I/O.
package validator

import (
	"math/rand"
	"regexp"
)

const (
	// MinUsernameLetters is the minimum number of ASCII letters a
	// username must contain, anywhere in the string.
	MinUsernameLetters = 3

	// CaptchaLength is the default challenge code length.
	CaptchaLength = 5

	captchaAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	letterRe  = regexp.MustCompile(`[A-Za-z]`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

	// Only gmail addresses are accepted for registration.
	emailRe = regexp.MustCompile(`^[\w.-]+@gmail\.com$`)
)

// IsValidUsername reports whether username contains at least three
// ASCII letters. Digits and symbols are allowed around them.
func IsValidUsername(username string) bool {
	return len(letterRe.FindAllString(username, -1)) >= MinUsernameLetters
}

// IsValidPassword reports whether password contains at least one
// uppercase letter, one digit and one special character.
func IsValidPassword(password string) bool {
	return upperRe.MatchString(password) &&
		digitRe.MatchString(password) &&
		specialRe.MatchString(password)
}

// IsValidEmail reports whether email is a well-formed address on the
// single allowed domain.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// GenerateCaptcha returns a random code of n characters drawn from
// uppercase letters and digits. Codes are human-verification
// challenges, not secrets; math/rand is deliberate.
func GenerateCaptcha(n int) string {
	if n <= 0 {
		n = CaptchaLength
	}
	code := make([]byte, n)
	for i := range code {
		code[i] = captchaAlphabet[rand.Intn(len(captchaAlphabet))]
	}
	return string(code)
}
