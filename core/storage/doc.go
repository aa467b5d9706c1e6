// Package storage provides the client for the remote object store.
//
// Session records are kept as objects in an S3-compatible bucket accessed
// through a single shared credential pair. The Client interface wraps the
// Minio SDK so services can be tested against a mock (see storage/mocks).
//
// Every caller holding the shared credential can list and read every session
// object in the bucket; discovery by session code relies on exactly that
// listing. Scope the credential to a dedicated bucket.
package storage
