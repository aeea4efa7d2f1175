// Package users provides the record store for the user registry.
//
// # Overview
//
// The whole registry is one JSON document ({"registeredUsers": [...]}) kept
// in a single file. Every operation reads the complete document and every
// mutation rewrites it in full; nothing is cached between calls.
//
// # Concurrency
//
// JSONRepository serializes its own callers with a mutex and other processes
// with an advisory lock on "<file>.lock" (shared for reads, exclusive for
// writes). Update runs a read-modify-write cycle under one exclusive lock so
// two cycles can never interleave.
//
// The lock file is created next to the data file on first use (for the
// default store that is "usuarios.json.lock") and is left in place afterwards.
// It holds no data; deleting it while no process runs is harmless.
//
// # Durability
//
// Writes go to a temporary file which is fsynced and renamed over the data
// file, so a crash leaves either the previous or the new document.
//
// Typical Usage
//
//	repo := users.NewJSONRepository("usuarios.json", 5*time.Second)
//	doc, _ := repo.Load(ctx)
//	_ = repo.Update(ctx, func(doc *models.UserDocument) (bool, error) {
//		return doc.RemoveByIdentification("1020"), nil
//	})
package users
