package services

import (
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/goccy/go-json"

	"pethotel-backend/errors"
)

// Token issuance and signature validation live in the identity service;
// this backend only decodes the claims payload it is handed.

// GetOperatorFromToken extracts the operator id and role from a token.
func GetOperatorFromToken(tokenString string) (uint, int, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "malformed token", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "cannot decode token", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "cannot parse token claims", err)
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "token carries no operator info", nil)
	}

	operatorID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "token carries no operator id", nil)
	}

	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "token carries no role", nil)
	}

	return uint(operatorID), int(role), nil
}

// GetEmailFromToken extracts the email claim, used to match a logged-in
// guest to a customer record.
func GetEmailFromToken(tokenString string) (string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "malformed token", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "cannot decode token", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "cannot parse token claims", err)
	}

	email, ok := claimsMap["email"].(string)
	if !ok || email == "" {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "token carries no email", nil)
	}
	return email, nil
}
