package cache_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/midbel/script/cache"
)

func openStore(t *testing.T) *cache.Store {
	t.Helper()
	store, err := cache.Open(filepath.Join(t.TempDir(), "scripts.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStorePutGet(t *testing.T) {
	store := openStore(t)
	key := cache.Key("x = 1")
	if err := store.Put(key, []byte(`{"statements":[]}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	data, err := store.Get(key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(data) != `{"statements":[]}` {
		t.Errorf("data = %s", data)
	}
}

func TestStoreGetMissing(t *testing.T) {
	store := openStore(t)
	if _, err := store.Get(cache.Key("never stored")); !errors.Is(err, cache.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestStoreReplace(t *testing.T) {
	store := openStore(t)
	key := cache.Key("x = 1")
	if err := store.Put(key, []byte("old")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(key, []byte("new")); err != nil {
		t.Fatalf("put: %v", err)
	}
	data, err := store.Get(key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("data = %s", data)
	}
}

func TestKey(t *testing.T) {
	if cache.Key("a") == cache.Key("b") {
		t.Error("distinct sources share a key")
	}
	if cache.Key("a") != cache.Key("a") {
		t.Error("key is not stable")
	}
}
