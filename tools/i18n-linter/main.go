// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files for consistency. It scans the Go
// source for i18n.T() calls, verifies every used key exists in the primary
// locale, and verifies the other locales carry the same key set.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
)

// dynamicPrefixes are key groups addressed with computed suffixes, such as
// the backend error codes looked up via "ecode." + code. Keys under these
// prefixes cannot be matched to a literal T() call and are exempt from the
// orphan check.
var dynamicPrefixes = []string{"ecode."}

func main() {
	calledKeys, literalKeys, err := findUsedKeys(".")
	if err != nil {
		fmt.Printf("error scanning source: %v\n", err)
		os.Exit(1)
	}

	primaryKeys, err := loadKeysFromLocale(filepath.Join(localesDir, primaryLocale))
	if err != nil {
		fmt.Printf("error loading primary locale: %v\n", err)
		os.Exit(1)
	}

	failed := false

	// Keys passed to T() must exist in the primary locale. Key-shaped
	// literals are too noisy for this check; they only suppress orphan
	// warnings below.
	for _, key := range diffKeys(calledKeys, primaryKeys) {
		fmt.Printf("missing from %s: %s\n", primaryLocale, key)
		failed = true
	}

	// Keys in the primary locale should be reachable from the code.
	var orphaned []string
	for key := range primaryKeys {
		if _, ok := calledKeys[key]; ok {
			continue
		}
		if _, ok := literalKeys[key]; ok {
			continue
		}
		if hasDynamicPrefix(key) {
			continue
		}
		orphaned = append(orphaned, key)
	}
	sort.Strings(orphaned)
	for _, key := range orphaned {
		fmt.Printf("orphaned in %s: %s\n", primaryLocale, key)
	}

	// Every other locale must mirror the primary key set exactly.
	localeFiles, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		fmt.Printf("error listing locales: %v\n", err)
		os.Exit(1)
	}
	for _, file := range localeFiles {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			fmt.Printf("error loading %s: %v\n", file, err)
			failed = true
			continue
		}
		for _, key := range diffKeys(primaryKeys, keys) {
			fmt.Printf("missing from %s: %s\n", filepath.Base(file), key)
			failed = true
		}
		for _, key := range diffKeys(keys, primaryKeys) {
			fmt.Printf("extra in %s: %s\n", filepath.Base(file), key)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
	fmt.Println("locale files are consistent")
}

func hasDynamicPrefix(key string) bool {
	for _, p := range dynamicPrefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// diffKeys returns the keys of a that are absent from b, sorted.
func diffKeys(a, b map[string]struct{}) []string {
	var out []string
	for key := range a {
		if _, ok := b[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// tCallRe matches i18n.T("key") calls and key-shaped string literals; the
// latter covers keys carried in table fields, such as route titles and
// sidebar labels.
var tCallRe = regexp.MustCompile(`i18n\.T\("([^"]+)"|"([a-z]+\.[a-z\._]+)"`)

// findUsedKeys scans all non-test .go files for translation keys. It
// returns keys passed to T() directly and key-shaped string literals as
// separate sets.
func findUsedKeys(root string) (map[string]struct{}, map[string]struct{}, error) {
	called := make(map[string]struct{})
	literals := make(map[string]struct{})
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && (info.Name() == "tools" || strings.HasPrefix(info.Name(), "_")) {
			return filepath.SkipDir
		}
		if info.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range tCallRe.FindAllStringSubmatch(string(content), -1) {
			if match[1] != "" {
				called[match[1]] = struct{}{}
			} else if match[2] != "" {
				literals[match[2]] = struct{}{}
			}
		}
		return nil
	})
	return called, literals, err
}

// loadKeysFromLocale reads a locale file and returns its leaf keys in
// dot-separated form.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into dot-separated leaf keys.
func flattenYAML(prefix string, node interface{}, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, val := range v {
			newPrefix := k
			if prefix != "" {
				newPrefix = prefix + "." + k
			}
			flattenYAML(newPrefix, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
