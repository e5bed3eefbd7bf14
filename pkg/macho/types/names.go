// Package types holds the closed Mach-O header enumerations: file types,
// header flags, CPU types and CPU subtypes, together with their name tables.
//
// All tables are package-level values built at init and never written
// afterwards, so lookups are safe from any number of goroutines.
package types

import "strconv"

type intName struct {
	i uint32
	s string
}

func lookupName(i uint32, names []intName) (string, bool) {
	for _, n := range names {
		if n.i == i {
			return n.s, true
		}
	}
	return "", false
}

func lookupValue(s string, names []intName) (uint32, bool) {
	for _, n := range names {
		if n.s == s {
			return n.i, true
		}
	}
	return 0, false
}

func stringName(i uint32, names []intName, goSyntax bool) string {
	if s, ok := lookupName(i, names); ok {
		if goSyntax {
			return "types." + s
		}
		return s
	}
	return strconv.FormatUint(uint64(i), 10)
}

type signedName struct {
	i int32
	s string
}

func lookupSigned(i int32, names []signedName) (string, bool) {
	for _, n := range names {
		if n.i == i {
			return n.s, true
		}
	}
	return "", false
}

func lookupSignedValue(s string, names []signedName) (int32, bool) {
	for _, n := range names {
		if n.s == s {
			return n.i, true
		}
	}
	return 0, false
}

func signedString(i int32) string {
	return strconv.FormatInt(int64(i), 10)
}
