package jwt

import (
	"Board/config"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

type Claims struct {
	jwt.RegisteredClaims
}

// Issuer 签发与校验 access token，仅支持 HMAC 系列算法
type Issuer struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration

	// Now 可替换的时钟，测试使用
	Now func() time.Time
}

func NewIssuer(conf *config.Config) (*Issuer, error) {
	return newIssuer(conf.Jwt.Secret, conf.Jwt.Algorithm, conf.Jwt.Expire())
}

func newIssuer(secret string, algorithm string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret 不能为空")
	}

	var method *jwt.SigningMethodHMAC
	switch algorithm {
	case jwt.SigningMethodHS256.Alg():
		method = jwt.SigningMethodHS256
	case jwt.SigningMethodHS384.Alg():
		method = jwt.SigningMethodHS384
	case jwt.SigningMethodHS512.Alg():
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("不支持的签名算法: %q", algorithm)
	}

	return &Issuer{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
		Now:    time.Now,
	}, nil
}

// TTL 默认有效期
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// IssueDefault 使用配置的默认有效期签发
func (i *Issuer) IssueDefault(subject string) (string, error) {
	return i.Issue(subject, i.ttl)
}

// Issue 签发 token，ttl <= 0 时签发的 token 立即过期
func (i *Issuer) Issue(subject string, ttl time.Duration) (string, error) {
	now := i.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(i.method, claims)
	return token.SignedString(i.secret)
}

// Verify 先校验签名再校验过期时间
func (i *Issuer) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{i.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(i.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
