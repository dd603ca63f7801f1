// Package spec implements package constraint records.
//
// A record names a package and the constraints applied to it: a
// version range, variant settings, a compiler, an installation hash
// prefix and dependency constraints. Records parse from and render to
// the compact constraint syntax:
//
//	hdf5@1.12:1.14 +mpi build_type=Release %gcc@12 ^zlib@1.2
//
// Records support three relations used throughout expansion:
// Satisfies (constraint containment), Constrain (component-wise
// merge) and Equal (structural identity).
//
// The API type adapts records to the expansion engine in package
// speclist. Variant definitions registered in a Registry drive the
// substitution of abstract "name=value" settings into typed form.
package spec
