// Package kv provides the client-side key-value persistence that backs the
// session store, standing in for browser local storage.
//
// # Overview
//
// Repository is a flat byte-valued map with atomic multi-key writes and
// deletes. Three implementations are provided:
//
//   - SQLiteRepository: a local file (metadata table, goose migrations),
//     multi-key operations wrapped in dbx.WithTx.
//   - RedisRepository: keys namespaced by a prefix, multi-key operations in
//     a MULTI/EXEC pipeline; lets several terminals share one login.
//   - MemoryRepository: process-local map for tests and throwaway sessions.
//
// # Contract
//
// Get returns (nil, nil) for a missing key. Set and Delete either apply to
// every key given or to none.
//
// Typical Usage
//
//	db, _ := kv.OpenSQLite(ctx, "session.db")
//	repo := kv.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, map[string][]byte{"authToken": tok, "user": userJSON})
//	v, _ := repo.Get(ctx, "authToken")
//	_ = repo.Delete(ctx, "authToken", "user")
package kv
