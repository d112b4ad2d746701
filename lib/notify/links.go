package notifyhandler

import (
	"net/url"
	"strings"

	"leave-desk-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const ApprovalPath = "/approval"

// BuildApprovalLink ссылка для решения из письма. При заданном секрете ссылка подписывается.
func BuildApprovalLink(publicURL, secret, requestID string, action models.ManagerAction) (string, error) {
	params := url.Values{}
	params.Set("action", string(action))
	params.Set("rid", requestID)
	if secret != "" {
		token, err := SignApprovalToken(secret, requestID, action)
		if err != nil {
			return "", err
		}
		params.Set("token", token)
	}
	return strings.TrimRight(publicURL, "/") + ApprovalPath + "?" + params.Encode(), nil
}

func SignApprovalToken(secret, requestID string, action models.ManagerAction) (string, error) {
	claims := jwt.MapClaims{
		"rid":    requestID,
		"action": string(action),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "ошибка подписи ссылки")
	}
	return signed, nil
}

func VerifyApprovalToken(secret, tokenStr, requestID string, action models.ManagerAction) error {
	if tokenStr == "" {
		return errors.New("ссылка не подписана")
	}
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return errors.Wrap(err, "некорректная подпись ссылки")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errors.New("некорректная подпись ссылки")
	}
	if claims["rid"] != requestID || claims["action"] != string(action) {
		return errors.New("подпись не соответствует ссылке")
	}
	return nil
}
