// Package dict is an input method engine backed by a SQLite dictionary.
//
// The dictionary is a single table:
//
//	CREATE TABLE conversions (
//		input      TEXT NOT NULL,
//		output     TEXT NOT NULL,
//		weight     INTEGER NOT NULL DEFAULT 0,
//		annotation TEXT
//	);
//
// Typed letters, digits and '-' accumulate in a composition buffer. After
// every change the buffer is looked up by exact match and the rows become
// candidates, highest weight first. Space, Down and Tab move the focus
// forward through the candidates, Up moves it back, and Enter commits the
// focused candidate or, without a focus, the raw buffer. While a candidate
// is focused the digits 1 to 9 commit the candidate at that position.
//
// With telex enabled tones are typed as letters, so digits never compose;
// they only select a focused candidate and are otherwise left unconsumed.
//
// Manual mode composes without lookups. Direct mode and a disabled IME
// leave every key unconsumed.
package dict
