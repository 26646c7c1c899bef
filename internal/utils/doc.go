// Package utils provides small helpers shared by the transport layers:
// the outbound HTTP client, JSON response writing and id generation.
package utils
