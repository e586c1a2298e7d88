package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func init() {
	jwtKey = []byte("unit-test-secret")
}

func signedToken(t *testing.T, key []byte, expiresAt time.Time) string {
	t.Helper()
	claims := Claims{
		UserID: "user-1",
		Name:   "Billy Hargrove",
		Email:  "billy@riverlandroofing.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func TestJWTMiddlewareRejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no bearer prefix", "Token abc.def.ghi"},
		{"bare token", "abc.def.ghi"},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + signedToken(t, jwtKey, time.Now().Add(-time.Hour))},
		{"tampered signature", "Bearer " + signedToken(t, []byte("other-key"), time.Now().Add(time.Hour))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/warranties", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, expected 401", rec.Code)
			}
			if called {
				t.Error("downstream handler ran despite rejected credential")
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, expected application/json", ct)
			}
		})
	}
}

func TestJWTMiddlewarePassThrough(t *testing.T) {
	var gotUserID, gotName string
	handler := JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r)
		gotName = GetUserName(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/warranties", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, jwtKey, time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	if gotUserID != "user-1" {
		t.Errorf("userId in context = %q, expected the one embedded at issuance", gotUserID)
	}
	if gotName != "Billy Hargrove" {
		t.Errorf("name in context = %q", gotName)
	}
}

func TestSigningKeyReadAfterInit(t *testing.T) {
	// JWT_SECRET set only after package init (the .env case) must still
	// reach the signer.
	saved := jwtKey
	defer func() { jwtKey = saved }()

	jwtKey = nil
	t.Setenv("JWT_SECRET", "late-loaded-secret")

	tokenStr, err := GenerateToken("user-2", "Mike Rodriguez", "mrodriguez@alliancefs.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("late-loaded-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token not signed with the env-supplied secret: %v", err)
	}
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	tokenStr, err := GenerateToken("user-9", "Sarah Mitchell", "smitchell@cornerstonepm.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parsing issued token: %v", err)
	}
	claims := token.Claims.(*Claims)
	if claims.UserID != "user-9" || claims.Email != "smitchell@cornerstonepm.com" {
		t.Errorf("claims round-trip mismatch: %+v", claims)
	}
}
