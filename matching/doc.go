// Package matching converts a vertex's atomic-strip ends into an
// auxiliary weighted graph, solves minimum-weight perfect matching on it
// via a pluggable Oracle, and reconstructs the resulting cycle cover by
// walking matched ends through their strip partners.
package matching
