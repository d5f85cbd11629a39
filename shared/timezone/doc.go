// Package timezone centralizes clock access in the application timezone.
//
// The location comes from the APP_TIMEZONE environment variable and must be
// an IANA name such as "UTC" or "Asia/Jakarta". It is resolved once when the
// package is imported; unknown names fall back to UTC.
package timezone
