// Package maintenance holds the out-of-band database tasks run by the
// cmd/seed-admin, cmd/seed-sample and cmd/clear-data binaries.
//
// Tasks run start to finish on a single goroutine and log through the
// logger stored in ctx (zerolog.Ctx).
package maintenance
