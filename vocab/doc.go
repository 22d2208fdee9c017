// Package vocab maps transcription tokens to integer ids and back.
//
// A vocabulary is stored as YAML; the position of a token in the list is
// its id:
//
//	name: mozarteum
//	tokens:
//	  - <pad>
//	  - <bos>
//	  - <eos>
//	  - "*clefG2"
//	  - 4c
//
// Encode/Decode fail on unknown entries (ErrUnknownToken, ErrUnknownID).
// Label never fails and is meant for diagnostics, e.g. as the label
// function of levenshtein.Render.
package vocab
