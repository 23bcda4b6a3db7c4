// Package c14 is your in-memory toolkit for radiocarbon calibration —
// from realm arithmetic and calibration-curve lookups to calibrated
// probability distributions, HPD intervals and contamination modelling.
//
// 🚀 What is c14?
//
//	A deterministic, concurrency-friendly library that brings together:
//		• Realm conversions: C14 age ↔ F14C ↔ pMC ↔ D14C, cal BP ↔ BC/AD ↔ b2k
//		• Curve access: piecewise-linear lookup, inverse crossings, resampling,
//		  smoothing and postbomb gluing over immutable curve tables
//		• Calibration: normal or Student-t likelihoods over any curve realm,
//		  with trimming, renormalization and postbomb detection
//		• Density analysis: weighted mean, median, mode, HPD interval sets,
//		  and overlap testing between distributions
//		• Contamination: forward mixing, cleaning and "muck" inversion, with
//		  analytic or seeded Monte Carlo error propagation
//
// ✨ Why choose c14?
//
//   - Explicit everywhere – no ambient curve caches, no hidden randomness
//   - Value semantics – densities and tables are freely copyable and
//     safe to share read-only across goroutines
//   - Typed failures – sentinel errors for every domain condition,
//     including a recoverable postbomb-required signal
//   - Pure Go core – gonum for the statistics, nothing else between
//     your measurement and its calendar age
//
// Under the hood, everything is organized under five subpackages:
//
//	realm/     — conversions between radiocarbon and calendar realms
//	curve/     — immutable Table type, accessor operations, provider registry
//	calibrate/ — the calibration engine (measurement × curve → density)
//	density/   — discretely sampled densities and their summaries
//	contam/    — contamination mixture model and its inverses
//
// Quick sketch of the data flow:
//
//	measurement ──┐
//	              ├─ calibrate ── density ── HPD / mean / median
//	curve table ──┘
//
// Dive into README.md for full examples and the per-package docs for
// the exact numerical contracts.
//
//	go get github.com/katalvlaran/c14
package c14
