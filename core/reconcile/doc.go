// Package reconcile provides the persistence primitives used to merge incoming
// inventory into the catalog.
//
// FindOrCreate resolves an entity by its natural key, inserting it when it is
// missing. Inserts use ON CONFLICT DO NOTHING followed by a locking read, so
// two writers racing on the same key converge on a single row instead of
// failing or duplicating it.
//
// Errors are split in two classes. Connectivity failures are wrapped in
// StorageUnavailableError (matching ErrStorageUnavailable) and abort a batch;
// everything else is a per-record failure the caller records and moves past.
//
//	err := reconcile.InTx(ctx, db, func(tx *gorm.DB) error {
//	    author := Author{Name: "Ursula K. Le Guin"}
//	    _, err := reconcile.FindOrCreate(ctx, tx, map[string]any{"name": author.Name}, &author)
//	    return err
//	})
package reconcile
