package auth

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Claims - a struct that will be encoded to JWT
type Claims struct {
	UserID  string `json:"userID"`
	Segment string `json:"segment"`
	jwt.StandardClaims
}

// JWTToken - JWT Token
type JWTToken struct {
	Value     string
	ExpiresAt time.Time
}

func fetchJWTToken(tokenStr string, jwtKey string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtKey), nil
	})

	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("the JWT Token is invalid")
	}

	return claims, nil
}

func createJWTToken(userID, segment, jwtKey string, tokenExpiration time.Duration) (*JWTToken, error) {
	expirationTime := time.Now().Add(tokenExpiration)
	claims := &Claims{
		UserID:  userID,
		Segment: segment,
		StandardClaims: jwt.StandardClaims{
			// In JWT, the expiry time is expressed as unix milliseconds
			ExpiresAt: expirationTime.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtKey))
	if err != nil {
		return nil, err
	}
	return &JWTToken{
		Value:     tokenString,
		ExpiresAt: expirationTime,
	}, nil
}
