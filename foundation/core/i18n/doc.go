// Package i18n provides number agreement and unit names for textkit.
//
// Package: i18n
// Title: Grammatical Agreement and Unit Catalogs
// Description: CaseForNumber picks among one/few/many forms with the Slavic
// rule. PluralIndex and Plural do the same for any locale using
// CLDR data. Catalogs with unit names for ru, en and de are
// embedded and loaded once on first use.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-30
// Modified: 2026-10-14
//
// # Usage
//
//	i18n.CaseForNumber(21, [3]string{"день", "дня", "дней"}) // "день"
//	i18n.Plural("en", 2, "file", "files")                    // "files"
//
//	cat, err := i18n.LoadCatalog("ru")
//	if err != nil {
//		return err
//	}
//	cat.Agree(3, cat.Duration.Hour) // "часа"
package i18n
