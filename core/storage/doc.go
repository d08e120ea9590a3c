// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface (mocked in
// core/storage/mocks) and adds the Archiver, which keeps copies of uploaded
// inventory files and rendered store reports. Both AWS S3 and self-hosted MinIO work.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	archiver := storage.NewArchiver(client, cfg.Storage.Bucket)
//	err = archiver.Put(ctx, "uploads/2024-01-02/abc.csv", data, "text/csv")
package storage
