// Package sift evaluates a labeled text corpus against a frozen
// randomly-initialized linear unit and reports per-split accuracy.
//
// There is no training step: weights are drawn once from a seeded
// initializer and never adjusted, so the result measures the forward
// pipeline, not a learned model.
//
// Basic usage:
//
//	f, _ := os.Open("corpus.csv")
//	defer f.Close()
//	summary, err := sift.Evaluate(f, sift.WithSeed(42))
package sift
