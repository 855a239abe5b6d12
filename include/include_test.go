package include_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/midbel/script"
	"github.com/midbel/script/include"
	"github.com/midbel/script/jwt"
)

func TestResolveSplicesIncludes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "y = 2")
	}))
	defer srv.Close()

	src := fmt.Sprintf("x = 1\ninclude '%s'\nz = 3", srv.URL)
	root, err := script.ParseScript(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var loader include.Loader
	resolved, err := loader.Resolve(context.Background(), root)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if n := len(resolved.Statements); n != 3 {
		t.Fatalf("got %d statements, want 3", n)
	}
	mid, ok := resolved.Statements[1].(script.ExprStatement)
	if !ok || mid.Name != "y" {
		t.Errorf("statement 1 = %#v, want the included assignment to y", resolved.Statements[1])
	}
	if n := include.Remaining(resolved); n != 0 {
		t.Errorf("%d includes remain", n)
	}
	// the input tree keeps its include statement
	if n := include.Remaining(root); n != 1 {
		t.Errorf("input tree mutated, %d includes remain", n)
	}
}

func TestResolveSendsBearerToken(t *testing.T) {
	token, err := include.Token(jwt.Claims{Subject: "loader"}, "hush")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprintln(w, "y = 2")
	}))
	defer srv.Close()

	root, err := script.ParseScript(fmt.Sprintf("include '%s'", srv.URL))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	loader := include.Loader{Token: token}
	if _, err := loader.Resolve(context.Background(), root); err != nil {
		t.Fatalf("resolve with token: %v", err)
	}
	bad := include.Loader{Token: "forged"}
	if _, err := bad.Resolve(context.Background(), root); err == nil {
		t.Fatal("expected resolve with a forged token to fail")
	}
}

func TestResolveInsideFunction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "y = 2")
	}))
	defer srv.Close()

	src := fmt.Sprintf("function f()\ninclude '%s'\nendfunction", srv.URL)
	root, err := script.ParseScript(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var loader include.Loader
	resolved, err := loader.Resolve(context.Background(), root)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	fn, ok := resolved.Statements[0].(script.FunctionStatement)
	if !ok || len(fn.Statements) != 1 {
		t.Fatalf("statement 0 = %#v, want function with spliced body", resolved.Statements[0])
	}
}

func TestResolveReportsParseErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "x = +")
	}))
	defer srv.Close()

	root, err := script.ParseScript(fmt.Sprintf("include '%s'", srv.URL))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var loader include.Loader
	_, err = loader.Resolve(context.Background(), root)
	pe, ok := err.(*script.ParserError)
	if !ok {
		t.Fatalf("err = %v, want *ParserError", err)
	}
	if !strings.Contains(pe.Prefix, srv.URL) {
		t.Errorf("prefix = %q, want it to name the include URL", pe.Prefix)
	}
}

func TestLoadRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	var loader include.Loader
	_, err := loader.Load(context.Background(), srv.URL)
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("err = %v, want a status error", err)
	}
}
