// Package resilience provides retry with exponential backoff for the HTTP
// client, including the resurrect policy used to re-probe dead hosts.
package resilience
