// Package locale declares the locale schema and the immutable record built from it.
//
// A Schema is an ordered list of text field names fixed when the application starts.
// Every schema implicitly carries the reserved "lang_code" field, which file content
// never sets directly. A Record holds one string per schema field plus the language
// code. Records are built only by the reconcile engine (or Schema.Sample) and are
// never mutated afterwards.
//
// # Usage
//
//	schema := locale.MustSchema("greetings_text", "pros_title")
//	sample := schema.Sample()      // every field equals its own name
//	title := rec.Get("pros_title") // dynamic access, falls back to the key
//
//	var view struct {
//	    Greetings string `l10n:"greetings_text"`
//	}
//	_ = rec.Decode(&view)
package locale
