// Package ir provides the shared data model for covreport.
//
// This package contains type definitions only. All other internal packages
// import ir; ir imports nothing internal. Descriptors, index sets and
// classifications defined here are built once per run and never mutated
// after loading.
//
// Key design constraints:
//   - Position is identity: descriptor i, label i and index i in any
//     manifest or session document all refer to the same entity
//   - Level keys are 0-based; documents carry 1-based levels
//   - The aggregate ("any level") bucket is never a map key, it is a
//     separate field on the owning structure
package ir
