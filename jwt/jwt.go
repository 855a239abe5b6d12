// Package jwt encodes and decodes compact HMAC-SHA256 JSON web tokens.
// Only the HS256 and none algorithms are supported.
package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var (
	ErrSign      = errors.New("invalid signature")
	ErrMalformed = errors.New("malformed token")
	ErrAlg       = errors.New("unsupported algorithm")
)

const (
	JWT   = "JWT"
	HS256 = "HS256"
	NONE  = "none"
)

type Claims struct {
	Id        string    `json:"jti,omitempty"`
	Issuer    string    `json:"iss,omitempty"`
	Audience  string    `json:"aud,omitempty"`
	Subject   string    `json:"sub,omitempty"`
	Expires   time.Time `json:"exp,omitempty"`
	NotBefore time.Time `json:"nbf,omitempty"`
	IssueAt   time.Time `json:"iat,omitempty"`
}

type Config struct {
	Claims
	Alg    string
	Secret string
}

// Decode verifies token against config's secret and returns its
// payload. A token signed with the none algorithm is accepted only
// when the config carries no secret.
func Decode(token string, config *Config) (any, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrMalformed
	}
	hdr, err := decodeHeader(parts[0])
	if err != nil {
		return nil, err
	}
	var secret string
	if config != nil {
		secret = config.Secret
	}
	switch hdr.Alg {
	case NONE:
		if secret != "" || parts[2] != "" {
			return nil, ErrSign
		}
	case HS256:
		want := signPart(parts[0]+"."+parts[1], secret)
		if secret == "" || !hmac.Equal([]byte(want), []byte(parts[2])) {
			return nil, ErrSign
		}
	default:
		return nil, ErrAlg
	}
	body, err := std.DecodeString(parts[1])
	if err != nil {
		return nil, ErrMalformed
	}
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, ErrMalformed
	}
	return payload, nil
}

// Encode signs payload into a compact token. Without a secret the
// token uses the none algorithm and carries an empty signature part.
func Encode(payload any, config *Config) (string, error) {
	alg := NONE
	if config == nil {
		config = new(Config)
	}
	if config.Secret != "" {
		alg = HS256
	}
	if config.Alg != "" && config.Alg != alg {
		return "", ErrAlg
	}
	var (
		hdr   = encodeHeader(alg)
		body  = marshalPart(payload)
		token = hdr + "." + body
		sign  = signPart(token, config.Secret)
	)
	return token + "." + sign, nil
}

type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

func encodeHeader(alg string) string {
	return marshalPart(header{Alg: alg, Typ: JWT})
}

func decodeHeader(part string) (header, error) {
	var hdr header
	buf, err := std.DecodeString(part)
	if err != nil {
		return hdr, ErrMalformed
	}
	if err := json.Unmarshal(buf, &hdr); err != nil {
		return hdr, ErrMalformed
	}
	if hdr.Typ != JWT {
		return hdr, ErrMalformed
	}
	return hdr, nil
}

var std = base64.URLEncoding.WithPadding(base64.NoPadding)

func marshalPart(v any) string {
	buf, _ := json.Marshal(v)
	return std.EncodeToString(buf)
}

func signPart(token, secret string) string {
	if secret == "" {
		return ""
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return std.EncodeToString(mac.Sum(nil))
}
