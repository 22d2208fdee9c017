// Package smtplusplus scores optical-music-recognition transcriptions of
// the SMT++ model against ground truth, and collects encoder features for
// clustering.
//
// What is inside?
//
//	levenshtein/  edit distance + deterministic alignment backtrace
//	score/        per-sample results, corpus error rates (SER/CER)
//	vocab/        token ⇄ id vocabularies stored as YAML
//	features/     encoder feature collection, .npy output
//	internal/     transcript files, HTTP API
//	cmd/smtscore  CLI: align, score, serve
//
// Quick example:
//
//	dist, ops := levenshtein.Levenshtein(reference, hypothesis)
//	fmt.Println(dist, levenshtein.FormatOps(ops)) // 3 SMMMSMI
//
//	go install github.com/DarkShadow4/SMT-plusplus/cmd/smtscore@latest
package smtplusplus
