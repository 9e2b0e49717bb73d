// internal/model/user.go
package model

type ContextKey string

const (
	// UserIDKey は認証済みユーザーID (uuid.UUID) をコンテキストに格納するキーです。
	UserIDKey ContextKey = "userID"
)
