package app

import (
	"testing"
	"time"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	cfg := TokenConfig{
		SecretKey: "user-secret",
		Expiry:    24 * time.Hour,
		Issuer:    "user-issuer",
	}
	tm := NewTokenManager(cfg)

	uid := "8b9d2c9e-1f6c-4a3e-a6a1-000000000001"
	name := "testuser"

	// 1. 测试生成和解析
	token, err := tm.Generate(uid, name)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	parsedUser, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// 验证字段
	if parsedUser.UID != uid {
		t.Errorf("Expected UID %s, got %s", uid, parsedUser.UID)
	}
	if parsedUser.Name != name {
		t.Errorf("Expected Name %s, got %s", name, parsedUser.Name)
	}
	if parsedUser.Issuer != cfg.Issuer {
		t.Errorf("Expected Issuer %s, got %s", cfg.Issuer, parsedUser.Issuer)
	}

	// 2. 测试过期
	shortExpiryCfg := cfg
	shortExpiryCfg.Expiry = -1 * time.Second
	tmExpired := NewTokenManager(shortExpiryCfg)

	expiredToken, err := tmExpired.Generate(uid, name)
	if err != nil {
		t.Fatalf("Generate (expired) failed: %v", err)
	}

	_, err = tm.Parse(expiredToken)
	if err == nil {
		t.Error("Expected error for expired token, but got nil")
	}

	// 3. 测试错误的密钥
	wrongKeyCfg := cfg
	wrongKeyCfg.SecretKey = "wrong-user-secret"
	tmWrongKey := NewTokenManager(wrongKeyCfg)

	wrongToken, _ := tmWrongKey.Generate(uid, name)
	_, err = tm.Parse(wrongToken)
	if err == nil {
		t.Error("Expected error for token generated with different secret key, but got nil")
	}

	// 4. 测试篡改后的 Token
	tamperedToken := token + "xyz"
	_, err = tm.Parse(tamperedToken)
	if err == nil {
		t.Error("Expected error for tampered user token, but got nil")
	}
}
