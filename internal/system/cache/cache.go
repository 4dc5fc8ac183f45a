// Released under an MIT license. See LICENSE.

// Package cache remembers the names bound in a session so that the
// interactive prompt can complete them without touching the session.
package cache

import (
	"sort"
	"strings"
)

// Complete returns the remembered names that start with prefix, sorted.
func Complete(prefix string) []string {
	resultq := make(chan []string)

	requestq <- func() {
		matches := []string{}

		i := sort.SearchStrings(names, prefix)
		for ; i < len(names) && strings.HasPrefix(names[i], prefix); i++ {
			matches = append(matches, names[i])
		}

		resultq <- matches
		close(resultq)
	}

	return <-resultq
}

// Populate replaces the remembered names with ns.
func Populate(ns []string) {
	donec := make(chan struct{})

	requestq <- func() {
		seen := map[string]bool{}
		names = names[:0]

		for _, n := range ns {
			if !seen[n] && isWord(n) {
				seen[n] = true
				names = append(names, n)
			}
		}

		sort.Strings(names)
		close(donec)
	}

	<-donec
}

func isWord(s string) bool {
	return s != "" && strings.IndexAny(s[:1], "!#$%&*+./<=>?@\\^|-~:(,") < 0
}

//nolint:gochecknoglobals
var (
	names    []string
	requestq chan func()
)

//nolint:gochecknoinits
func init() {
	requestq = make(chan func(), 1)

	go service()
}

func service() {
	for {
		(<-requestq)()
	}
}
