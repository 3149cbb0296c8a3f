// Package molpath walks molecule graphs depth-first and encodes every path
// the walk explores as compact text records.
//
// What is molpath?
//
//	A small pure-Go toolkit built around one event protocol:
//		• walk/        Walk State, the Observer protocol and the Walk driver
//		• pathwriter/  the Observer that turns events into path records
//		• mol/         a molecule graph with YAML and line-fixture input
//		• builder/     deterministic chain, ring and star fixtures
//		• fingerprint/ hashed path records as fixed-width bit sets
//		• catalog/     a Badger store of named fingerprints with screening
//		• cmd/molpath  command-line access to all of the above
//
// Quick start:
//
//	m, _ := mol.ParseLine("C1CC1")
//	root, _ := m.Atom(0)
//	var records pathwriter.Records
//	_ = walk.Walk(root, pathwriter.New(&records))
//	// records: C, CC, CCC, CCC-3
//
// The record format is private to molpath and is not a chemical
// interchange notation.
package molpath
