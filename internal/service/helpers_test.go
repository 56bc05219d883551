package service_test

import (
	"context"
	"strings"

	"spartans-cricket-backend/internal/security"
	"spartans-cricket-backend/internal/storage"
)

var testStorageCfg = storage.Config{
	MaxBytes:     1 << 20,
	AllowedTypes: []string{"image/jpeg", "image/png"},
}

func adminCtx() context.Context {
	return security.WithPrincipal(context.Background(), &security.Principal{Username: "admin", Roles: []string{security.RoleAdmin}})
}

func pngUpload(body string) *storage.ImageUpload {
	return &storage.ImageUpload{Reader: strings.NewReader(body), Filename: "me.png", ContentType: "image/png", Size: int64(len(body))}
}
