package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/midbel/script"
	"github.com/midbel/script/cache"
	"github.com/midbel/script/include"
)

func main() {
	var (
		asXML     = flag.Bool("x", false, "write the parsed script as XML instead of JSON")
		compact   = flag.Bool("c", false, "compact output")
		resolve   = flag.Bool("r", false, "resolve include statements one level deep before writing")
		token     = flag.String("t", "", "bearer token sent when fetching includes")
		cacheFile = flag.String("cache", "", "cache parse results in this file")
	)
	flag.Parse()

	text, err := readSource(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(text, *asXML, *compact, *resolve, *token, *cacheFile); err != nil {
		var pe *script.ParserError
		if errors.As(err, &pe) {
			fmt.Fprintln(os.Stderr, pe.Render())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func readSource(file string) (string, error) {
	if file == "" || file == "-" {
		buf, err := io.ReadAll(os.Stdin)
		return string(buf), err
	}
	buf, err := os.ReadFile(file)
	return string(buf), err
}

func run(text string, asXML, compact, resolve bool, token, cacheFile string) error {
	var store *cache.Store
	if cacheFile != "" {
		var err error
		store, err = cache.Open(cacheFile)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	root, err := parse(text, store)
	if err != nil {
		return err
	}
	if resolve {
		loader := include.Loader{Token: token}
		root, err = loader.Resolve(context.Background(), root)
		if err != nil {
			return err
		}
		if n := include.Remaining(root); n > 0 {
			log.Printf("%d include statement(s) left unresolved", n)
		}
	}
	if asXML {
		return writeXML(os.Stdout, root, compact)
	}
	e := json.NewEncoder(os.Stdout)
	if !compact {
		e.SetIndent("", "    ")
	}
	return e.Encode(root)
}

func parse(text string, store *cache.Store) (*script.Script, error) {
	if store == nil {
		return script.ParseScript(text)
	}
	key := cache.Key(text)
	if data, err := store.Get(key); err == nil {
		var root script.Script
		if err := json.Unmarshal(data, &root); err == nil {
			log.Printf("cache hit for %.12s", key)
			return &root, nil
		}
	}
	root, err := script.ParseScript(text)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(root)
	if err != nil {
		return nil, err
	}
	if err := store.Put(key, data); err != nil {
		log.Printf("cache put: %s", err)
	}
	return root, nil
}
