//go:build meshdebug

package mesh

const debugAssertions = true
