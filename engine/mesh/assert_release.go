//go:build !meshdebug

package mesh

const debugAssertions = false
