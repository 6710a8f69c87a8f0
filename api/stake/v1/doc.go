// Package stakev1 defines the stake ledger wire messages and gRPC service
// descriptors for stake/v1/stake.proto.
//
// The message structs carry protoc-style field tags. At init the package
// builds the file descriptor from those tags, and calls cross the wire as
// protobuf encoded dynamic messages, so the package builds without a protoc
// toolchain while staying wire compatible with generated clients.
package stakev1
