// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides the interface strings for lscli in English and
// Japanese. The locale files are nested YAML grouped by surface (login,
// users, dialog, nav, cli, ...); go-i18n flattens the nesting into
// dot-separated message IDs, so a key reads like "users.no_users". The
// "ecode.*" group mirrors the backend's error-code table and is looked up
// with computed IDs, which is why Has exists alongside T.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

// Init loads the embedded locale files and activates the given language.
// Unknown languages fall back to English, the bundle default.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		bundle.ParseMessageFileBytes(data, f.Name())
	}

	localizer = i18n.NewLocalizer(bundle, lang)
}

// T translates a message by its dot-separated ID. Messages may carry fmt
// verbs; any additional arguments are applied with Sprintf. An unknown ID
// comes back verbatim so a missed translation shows up on screen instead of
// rendering as an empty string.
func T(messageID string, args ...interface{}) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Has reports whether a translation exists for the given ID. Callers that
// build IDs at runtime, like the "ecode." + code lookup, use it to decide
// between the localized text and their own fallback.
func Has(messageID string) bool {
	if localizer == nil {
		Init("en")
	}
	_, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	return err == nil
}

// SetLang switches the active language at runtime. Subsequent T calls
// resolve against the new locale; already-rendered strings are the caller's
// problem.
func SetLang(lang string) {
	Init(lang)
}
