// Package include fetches and splices the scripts named by include
// statements. Resolution is a host-application concern: the core
// parser emits include statements and leaves them alone, a host that
// wants them inlined runs the parsed tree through a Loader.
package include

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/midbel/script"
	"github.com/midbel/script/jwt"
)

// Loader fetches include URLs over HTTP. The zero value uses the
// default client and sends no Authorization header.
type Loader struct {
	Client *http.Client
	Token  string // optional bearer token
}

// Token mints an HMAC bearer token a Loader can present to a
// protected include host.
func Token(claims jwt.Claims, secret string) (string, error) {
	cfg := jwt.Config{
		Claims: claims,
		Secret: secret,
	}
	return jwt.Encode(claims, &cfg)
}

func (l *Loader) prepare(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if l.Token != "" {
		req.Header.Set("Authorization", "Bearer "+l.Token)
	}
	return req, nil
}

// Load fetches the script text behind url.
func (l *Loader) Load(ctx context.Context, url string) (string, error) {
	req, err := l.prepare(ctx, url)
	if err != nil {
		return "", err
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("include %s: %s", url, res.Status)
	}
	buf, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Resolve replaces every include statement in s with the parsed
// statements of the fetched script, one level deep: include statements
// found inside fetched scripts are left as is. The input tree is not
// modified.
func (l *Loader) Resolve(ctx context.Context, s *script.Script) (*script.Script, error) {
	stmts, err := l.resolve(ctx, s.Statements)
	if err != nil {
		return nil, err
	}
	return &script.Script{Statements: stmts}, nil
}

func (l *Loader) resolve(ctx context.Context, stmts []script.Statement) ([]script.Statement, error) {
	out := make([]script.Statement, 0, len(stmts))
	for _, st := range stmts {
		switch st := st.(type) {
		case script.IncludeStatement:
			text, err := l.Load(ctx, st.URL)
			if err != nil {
				return nil, err
			}
			sub, err := script.ParseScript(text)
			if err != nil {
				if pe, ok := err.(*script.ParserError); ok {
					pe.Prefix = fmt.Sprintf("included from %s", st.URL)
				}
				return nil, err
			}
			out = append(out, sub.Statements...)
		case script.FunctionStatement:
			body, err := l.resolve(ctx, st.Statements)
			if err != nil {
				return nil, err
			}
			st.Statements = body
			out = append(out, st)
		default:
			out = append(out, st)
		}
	}
	return out, nil
}

// Remaining counts the include statements left in s, at any depth.
// After a Resolve it reports how many were introduced by the included
// scripts themselves.
func Remaining(s *script.Script) int {
	var n int
	script.Walk(s, func(st script.Statement) bool {
		if _, ok := st.(script.IncludeStatement); ok {
			n++
		}
		return true
	})
	return n
}
