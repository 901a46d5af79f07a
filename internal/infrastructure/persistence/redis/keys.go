package redis

import "fmt"

func sessionKey(userID uint) string {
	return fmt.Sprintf("session:%d", userID)
}

func blacklistKey(token string) string {
	return "blacklist:" + token
}

func cartKey(cartID string) string {
	return "cart:" + cartID
}
